package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedName(t *testing.T) {
	tests := []struct {
		name     string
		schema   ConstructSchema
		expected string
	}{
		{
			name:     "resource prefix stripped",
			schema:   ConstructSchema{Name: "CfnDistribution"},
			expected: "Distribution",
		},
		{
			name:     "no prefix left untouched",
			schema:   ConstructSchema{Name: "Distribution"},
			expected: "Distribution",
		},
		{
			name:     "prefix only",
			schema:   ConstructSchema{Name: "Cfn"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.schema.NormalizedName())
		})
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "enabled", JoinPath("", "enabled"))
	assert.Equal(t, "origin.domainName", JoinPath("origin", "domainName"))
	assert.Equal(t, "a.b.c", JoinPath("a.b", "c"))
}

func TestPropertySchemaChild(t *testing.T) {
	p := &PropertySchema{
		Name: "defaultCacheBehavior",
		Nested: []*PropertySchema{
			{Name: "targetOriginId"},
			{Name: "viewerProtocolPolicy"},
		},
	}

	assert.True(t, p.HasChild("targetOriginId"))
	assert.False(t, p.HasChild("compress"))
	assert.Nil(t, p.Child("compress"))
	assert.Equal(t, "viewerProtocolPolicy", p.Child("viewerProtocolPolicy").Name)

	var nilSchema *PropertySchema
	assert.Nil(t, nilSchema.Child("anything"))
}

func TestConstructSchemaTopLevel(t *testing.T) {
	c := ConstructSchema{
		Module: "aws-cloudfront",
		Name:   "CfnDistribution",
		Props: []*PropertySchema{
			{Name: "distributionConfig"},
			{Name: "tags"},
		},
	}

	assert.Equal(t, []string{"distributionConfig", "tags"}, c.TopLevel())
	assert.NotNil(t, c.Prop("tags"))
	assert.Nil(t, c.Prop("missing"))
}
