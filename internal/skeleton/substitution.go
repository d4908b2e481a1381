package skeleton

import "strings"

// Placeholder tokens embedded in template files.
const (
	TokenTemplate      = "{template}"
	TokenTemplateUpper = "{template_upper}"
	TokenName          = "{name}"
	TokenVersion       = "{version}"
	TokenDesc          = "{desc}"
)

// AllTokens lists every placeholder token a finished skeleton must not contain.
var AllTokens = []string{TokenTemplate, TokenTemplateUpper, TokenName, TokenVersion, TokenDesc}

// Substitution maps one token to its replacement.
type Substitution struct {
	Token string
	Value string
}

// Substitutions is an ordered token to value mapping.
type Substitutions []Substitution

// With returns a copy of s with token mapped to value, replacing an earlier mapping.
func (s Substitutions) With(token, value string) Substitutions {
	out := make(Substitutions, 0, len(s)+1)
	for _, sub := range s {
		if sub.Token != token {
			out = append(out, sub)
		}
	}
	return append(out, Substitution{Token: token, Value: value})
}

// Map applies fn to every value.
func (s Substitutions) Map(fn func(string) string) Substitutions {
	out := make(Substitutions, len(s))
	for i, sub := range s {
		out[i] = Substitution{Token: sub.Token, Value: fn(sub.Value)}
	}
	return out
}

// Apply replaces every occurrence of every token in a single left-to-right pass.
// Replacement values are never rescanned, so a value containing a token is
// written literally.
func (s Substitutions) Apply(text string) string {
	if len(s) == 0 {
		return text
	}
	pairs := make([]string, 0, len(s)*2)
	for _, sub := range s {
		if sub.Token == "" {
			continue
		}
		pairs = append(pairs, sub.Token, sub.Value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// ContentSubstitutions returns the token map applied to a template file.
// {template_upper} is only mapped for files that carry it (see isUpperTokenFile).
func ContentSubstitutions(p Params, withUpper bool) Substitutions {
	subs := Substitutions{}
	if withUpper {
		subs = subs.With(TokenTemplateUpper, p.PluginUpperFirst())
	}
	return subs.With(TokenTemplate, p.PluginLower())
}

// ManifestSubstitutions returns the token map applied to the manifest.
func ManifestSubstitutions(p Params) Substitutions {
	return Substitutions{
		{Token: TokenName, Value: p.Module},
		{Token: TokenVersion, Value: p.Version},
		{Token: TokenDesc, Value: p.Description},
	}
}
