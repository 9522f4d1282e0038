package relation

// Call is a structured relation-forming call: the verb, its target model,
// an optional through model and an optional explicit key.
// Calls are immutable values; Through returns a modified copy.
type Call struct {
	Verb   Type
	Target string // model name, or an identifier registered with WithModels
	Via    string // through model, same resolution as Target
	Key    string // explicit key column
}

// BelongsTo returns a belongsTo call. An optional key overrides the
// convention-derived foreign key on the owning side.
//
//	relation.BelongsTo("User", "userid")
func BelongsTo(target string, key ...string) Call {
	return newCall(BelongsToType, target, key)
}

// BelongsToMany returns a belongsToMany call.
func BelongsToMany(target string) Call {
	return newCall(BelongsToManyType, target, nil)
}

// HasOne returns a hasOne call. An optional key overrides the
// convention-derived foreign key on the target side.
func HasOne(target string, key ...string) Call {
	return newCall(HasOneType, target, key)
}

// HasMany returns a hasMany call.
//
//	relation.HasMany("Patient").Through("Appointment")
func HasMany(target string, key ...string) Call {
	return newCall(HasManyType, target, key)
}

// MorphOne returns a morphOne call.
func MorphOne(target string, key ...string) Call {
	return newCall(MorphOneType, target, key)
}

// MorphTo returns a morphTo call.
func MorphTo(target string) Call {
	return newCall(MorphToType, target, nil)
}

// MorphMany returns a morphMany call.
func MorphMany(target string, key ...string) Call {
	return newCall(MorphManyType, target, key)
}

// Through returns a copy of c traversing the given intermediate model.
func (c Call) Through(model string) Call {
	c.Via = model
	return c
}

// IsZero reports whether c carries no verb.
func (c Call) IsZero() bool { return c.Verb == "" }

func newCall(t Type, target string, key []string) Call {
	c := Call{Verb: t, Target: target}
	if len(key) > 0 {
		c.Key = key[0]
	}
	return c
}
