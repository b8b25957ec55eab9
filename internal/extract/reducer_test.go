package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

func field(value string, conf model.Confidence, source string) *model.ExtractionField {
	return &model.ExtractionField{Value: model.StringPtr(value), Confidence: conf, Source: source}
}

func TestMerge_FieldsNeverRevert(t *testing.T) {
	acc := &model.CompanyResearchOutput{CompanyName: field("Stripe", model.ConfidenceHigh, "https://stripe.com")}

	changed := Merge(acc, &model.CompanyResearchOutput{})
	assert.False(t, changed)
	assert.Equal(t, "Stripe", acc.CompanyName.Text())

	changed = Merge(acc, &model.CompanyResearchOutput{CompanyName: &model.ExtractionField{}})
	assert.False(t, changed)
	assert.Equal(t, "Stripe", acc.CompanyName.Text())
}

func TestMerge_LastValueWins(t *testing.T) {
	acc := &model.CompanyResearchOutput{}
	assert.True(t, Merge(acc, &model.CompanyResearchOutput{Industry: field("Pay", "", "")}))
	assert.True(t, Merge(acc, &model.CompanyResearchOutput{Industry: field("Payments", "", "")}))
	assert.Equal(t, "Payments", acc.Industry.Text())
}

func TestMerge_ConfidenceNeverDowngrades(t *testing.T) {
	acc := &model.CompanyResearchOutput{Pricing: field("$10", model.ConfidenceHigh, "https://a.com/pricing")}
	Merge(acc, &model.CompanyResearchOutput{Pricing: field("$12", model.ConfidenceLow, "https://a.com/pricing")})
	assert.Equal(t, "$12", acc.Pricing.Text())
	assert.Equal(t, model.ConfidenceHigh, acc.Pricing.Confidence)

	Merge(acc, &model.CompanyResearchOutput{Pricing: field("$12", model.Confidence("bogus"), "")})
	assert.Equal(t, model.ConfidenceHigh, acc.Pricing.Confidence)
	assert.Equal(t, "https://a.com/pricing", acc.Pricing.Source)
}

func TestMerge_DoesNotAliasInput(t *testing.T) {
	next := &model.CompanyResearchOutput{CompanyName: field("Acme", model.ConfidenceLow, "x")}
	acc := &model.CompanyResearchOutput{}
	Merge(acc, next)
	*next.CompanyName.Value = "changed"
	assert.Equal(t, "Acme", acc.CompanyName.Text())
}

func TestMerge_Nil(t *testing.T) {
	assert.False(t, Merge(nil, &model.CompanyResearchOutput{}))
	assert.False(t, Merge(&model.CompanyResearchOutput{}, nil))
}

func TestEnforceSources(t *testing.T) {
	out := &model.CompanyResearchOutput{
		CompanyName: field("Stripe", model.ConfidenceHigh, "https://stripe.com"),
		Industry:    field("Payments", model.ConfidenceMedium, " "),
		Pricing:     field("", model.ConfidenceLow, "https://stripe.com/pricing"),
	}
	enforceSources(out)
	assert.Equal(t, "Stripe", out.CompanyName.Text())
	assert.Nil(t, out.Industry.Value)
	assert.Nil(t, out.Pricing.Value)
}

func TestEvidenced(t *testing.T) {
	acc := &model.CompanyResearchOutput{
		CompanyName: field("Stripe", model.ConfidenceHigh, "https://stripe.com"),
		CompanySize: field("8,000 employees", model.ConfidenceLow, ""),
	}
	view := evidenced(acc)
	assert.Equal(t, "Stripe", view.CompanyName.Text())
	assert.False(t, view.CompanySize.HasValue())
	// acc itself keeps the value until a source arrives.
	assert.Equal(t, "8,000 employees", acc.CompanySize.Text())

	assert.True(t, sameOutput(view, evidenced(acc)))
	Merge(acc, &model.CompanyResearchOutput{CompanySize: field("", "", "https://stripe.com/about")})
	next := evidenced(acc)
	assert.False(t, sameOutput(view, next))
	assert.Equal(t, "8,000 employees", next.CompanySize.Text())
}
