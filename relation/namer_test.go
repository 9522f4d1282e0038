package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mickamy/ormrel/relation"
)

type plain struct{}

type valueNamer struct{}

func (valueNamer) TableName() string { return "custom_values" }

type ptrNamer struct{}

func (*ptrNamer) TableName() string { return "custom_ptrs" }

type physician struct{}

func (physician) TableName() string   { return "physician" }
func (physician) IDAttribute() string { return "_id" }

func (physician) RelationMembers() []relation.Member {
	return []relation.Member{
		relation.Rel("patients", relation.HasMany("Patient").Through("Appointment")),
		{Name: "clinic", Body: "return this.belongsTo(Clinic, ['clinic_ref'])"},
	}
}

func (physician) RelationOverrides() []relation.Override {
	return []relation.Override{
		{Name: "clinic", Type: relation.BelongsToType, ModelTo: "Hospital", KeyFrom: "hospital_id", KeyTo: "_id"},
	}
}

type renamed struct{}

func (*renamed) TableName() string { return "tbl_docs" }
func (*renamed) ModelName() string { return "Document" }

func TestDescribeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		describe func() relation.Declaration
		expected string
	}{
		{
			name:     "fallback when TableNamer not implemented",
			describe: func() relation.Declaration { return relation.Describe[plain]("fallback") },
			expected: "fallback",
		},
		{
			name:     "value receiver",
			describe: func() relation.Declaration { return relation.Describe[valueNamer]("fallback") },
			expected: "custom_values",
		},
		{
			name:     "pointer receiver",
			describe: func() relation.Declaration { return relation.Describe[ptrNamer]("fallback") },
			expected: "custom_ptrs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.describe().Table)
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	decl := relation.Describe[physician]("")

	assert.Equal(t, "physician", decl.Table)
	assert.Equal(t, "_id", decl.IDAttribute)
	assert.Len(t, decl.Members, 2)
	assert.Len(t, decl.Relations, 1)

	assert.Equal(t, "Document", relation.Describe[renamed]("").ModelName)
}

func TestResolveType(t *testing.T) {
	t.Parallel()

	got := relation.ResolveType[physician]("")

	assert.Equal(t, []string{"patients", "clinic"}, got.Names())
	assert.Equal(t, relation.Descriptor{
		Name:         "patients",
		Type:         relation.HasManyType,
		ModelFrom:    "Physician",
		ModelTo:      "Patient",
		KeyFrom:      "_id",
		KeyTo:        "physician_id",
		ModelThrough: "Appointment",
		KeyThrough:   "patient_id",
		Multiple:     true,
	}, mustGet(t, got, "patients"))
	assert.Equal(t, relation.Descriptor{
		Name:    "clinic",
		Type:    relation.BelongsToType,
		ModelTo: "Hospital",
		KeyFrom: "hospital_id",
		KeyTo:   "_id",
	}, mustGet(t, got, "clinic"))
}
