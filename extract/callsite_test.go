package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/propdrift/schema"
)

func extractImplemented(t *testing.T, src string) []schema.ConstructSchema {
	t.Helper()
	tree := parseSource(t, src)
	return ExtractImplemented(tree, "aws-cloudfront")
}

func TestExtractImplementedBasics(t *testing.T) {
	schemas := extractImplemented(t, `
export class Distribution extends Resource {
  constructor(scope: Construct, id: string, props: DistributionProps) {
    super(scope, id);
    const distribution = new CfnDistribution(this, "Resource", {
      distributionConfig: {
        enabled: true,
        comment: props.comment,
      },
      tags: props.tags,
    });
  }
}
`)

	require.Len(t, schemas, 1)
	cs := schemas[0]
	assert.Equal(t, "CfnDistribution", cs.Name)
	assert.Equal(t, "aws-cloudfront", cs.Module)
	assert.Equal(t, []string{"distributionConfig", "tags"}, cs.TopLevel())

	cfg := cs.Prop("distributionConfig")
	require.NotNil(t, cfg)
	assert.Equal(t, "enabled", cfg.Nested[0].Name)
	assert.Equal(t, "comment", cfg.Nested[1].Name)

	// Non-literal values contribute no nesting.
	assert.Nil(t, cs.Prop("tags").Nested)
}

func TestExtractImplementedDiscriminator(t *testing.T) {
	schemas := extractImplemented(t, `
const a = new CfnBucket(this, "Bucket", { bucketName: "x" });
const b = new CfnBucket(this, id, { bucketName: "x" });
const c = new Bucket(this, "Resource", { bucketName: "x" });
const d = new CfnBucket(this, "Resource", { bucketName: "x" });
`)

	// Only the call carrying the "Resource" discriminator with a Cfn callee
	// is the wrapper's internal resource construction.
	require.Len(t, schemas, 1)
	assert.Equal(t, "CfnBucket", schemas[0].Name)
	assert.Equal(t, []string{"bucketName"}, schemas[0].TopLevel())
}

func TestExtractImplementedMemberExpressionCallee(t *testing.T) {
	schemas := extractImplemented(t, `
const resource = new s3.CfnBucket(this, "Resource", { bucketName: "logs" });
`)

	require.Len(t, schemas, 1)
	assert.Equal(t, "CfnBucket", schemas[0].Name)
}

func TestExtractImplementedNoConfigArgument(t *testing.T) {
	schemas := extractImplemented(t, `
const resource = new CfnWaitCondition(this, "Resource");
`)

	require.Len(t, schemas, 1)
	assert.Empty(t, schemas[0].Props)
}

func TestExtractImplementedSpreadSingleHop(t *testing.T) {
	schemas := extractImplemented(t, `
const distributionConfig = {
  distributionConfig: {
    enabled: true,
  },
};
const resource = new CfnDistribution(this, "Resource", { ...distributionConfig });
`)

	require.Len(t, schemas, 1)
	cs := schemas[0]
	require.Equal(t, []string{"distributionConfig"}, cs.TopLevel())

	// Inlined properties keep their own nesting, identical to writing the
	// literal directly.
	cfg := cs.Prop("distributionConfig")
	require.NotNil(t, cfg)
	assert.True(t, cfg.HasChild("enabled"))
}

func TestExtractImplementedSpreadMergesWithDirectKeys(t *testing.T) {
	schemas := extractImplemented(t, `
const base = {
  enabled: true,
  comment: "managed",
};
const resource = new CfnDistribution(this, "Resource", {
  ...base,
  priceClass: "PriceClass_100",
});
`)

	require.Len(t, schemas, 1)
	assert.Equal(t, []string{"enabled", "comment", "priceClass"}, schemas[0].TopLevel())
}

func TestExtractImplementedSpreadChainsNotResolved(t *testing.T) {
	schemas := extractImplemented(t, `
const inner = {
  hidden: true,
};
const outer = {
  visible: true,
  ...inner,
};
const resource = new CfnDistribution(this, "Resource", { ...outer });
`)

	require.Len(t, schemas, 1)
	// One hop inlines outer's own keys; the spread inside outer is a second
	// hop and contributes nothing.
	assert.Equal(t, []string{"visible"}, schemas[0].TopLevel())
}

func TestExtractImplementedSpreadNonIdentifier(t *testing.T) {
	schemas := extractImplemented(t, `
const resource = new CfnDistribution(this, "Resource", {
  ...this.buildConfig(),
  enabled: true,
});
`)

	require.Len(t, schemas, 1)
	assert.Equal(t, []string{"enabled"}, schemas[0].TopLevel())
}

func TestExtractImplementedSpreadUnknownIdentifier(t *testing.T) {
	schemas := extractImplemented(t, `
const resource = new CfnDistribution(this, "Resource", { ...importedConfig });
`)

	require.Len(t, schemas, 1)
	assert.Empty(t, schemas[0].Props)
}

func TestExtractImplementedShorthandAndDuplicateKeys(t *testing.T) {
	schemas := extractImplemented(t, `
const enabled = true;
const resource = new CfnDistribution(this, "Resource", {
  enabled,
  comment: "first",
  comment: "second",
});
`)

	require.Len(t, schemas, 1)
	assert.Equal(t, []string{"enabled", "comment"}, schemas[0].TopLevel())
}

func TestExtractImplementedDepthBound(t *testing.T) {
	schemas := extractImplemented(t, `
const resource = new CfnDeep(this, "Resource", {
  a: { b: { c: { d: { e: true } } } },
});
`)

	require.Len(t, schemas, 1)
	a := schemas[0].Prop("a")
	require.NotNil(t, a)
	b := a.Child("b")
	require.NotNil(t, b)
	c := b.Child("c")
	require.NotNil(t, c)
	d := c.Child("d")
	require.NotNil(t, d)
	// Truncated to a leaf past the bound.
	assert.Nil(t, d.Nested)
}

func TestExtractImplementedMultipleCalls(t *testing.T) {
	schemas := extractImplemented(t, `
const bucket = new CfnBucket(this, "Resource", { bucketName: "x" });
const policy = new CfnBucketPolicy(this, "Resource", { policyDocument: {} });
`)

	require.Len(t, schemas, 2)
	assert.Equal(t, "CfnBucket", schemas[0].Name)
	assert.Equal(t, "CfnBucketPolicy", schemas[1].Name)
}
