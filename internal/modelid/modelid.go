// Package modelid normalizes free-form model identifiers into a stable
// (vendor, family, color) triple. Vendors key display colors; families key
// aggregation rows, so "claude-sonnet-4-20250514" and "claude-sonnet-4-5"
// land in the same bucket family-wise only when the rules say so, but always
// share the anthropic color.
package modelid

import (
	"regexp"
	"strings"
)

// Identity is the normalized form of a raw model identifier.
type Identity struct {
	Vendor string
	Family string
	Color  string // hex, a function of Vendor only
}

// Key returns the opaque aggregation key combining vendor and family.
func (id Identity) Key() string {
	return id.Vendor + "/" + id.Family
}

// NeutralColor is reserved for unrecognized vendors.
const NeutralColor = "#6b6d8a"

var vendorColors = map[string]string{
	"anthropic": "#d97757",
	"openai":    "#10a37f",
	"google":    "#4796e3",
	"meta":      "#0866ff",
	"mistral":   "#fa500f",
	"deepseek":  "#4d6bfe",
	"xai":       "#ccccbc",
	"alibaba":   "#615ced",
	"zhipu":     "#00b2a9",
	"cohere":    "#39594d",
}

// VendorColor returns the display color for a vendor, or the reserved
// neutral color when the vendor has none.
func VendorColor(vendor string) string {
	if c, ok := vendorColors[vendor]; ok {
		return c
	}
	return NeutralColor
}

// aliases handles identifiers that are pure aliases of another canonical
// identity with no lexical relationship to it (rolling tags and such).
// Checked before any suffix stripping.
var aliases = map[string]Identity{
	"claude-3-5-sonnet-latest": {Vendor: "anthropic", Family: "claude-sonnet"},
	"claude-3-5-haiku-latest":  {Vendor: "anthropic", Family: "claude-haiku"},
	"gemini-flash-latest":      {Vendor: "google", Family: "gemini-flash"},
	"gemini-pro-latest":        {Vendor: "google", Family: "gemini-pro"},
	"chatgpt-4o-latest":        {Vendor: "openai", Family: "gpt-4o"},
}

// noiseSuffixes are non-identity tags stripped repeatedly until none apply:
// reasoning-effort, chat-mode, pricing-tier, release-stage and alias tags.
var noiseSuffixes = []string{
	"-thinking", "-reasoning", "-high", "-medium", "-low", "-minimal",
	"-chat", "-instruct", "-it",
	":free", ":paid", "-free",
	"-preview", "-beta", "-alpha", "-exp", "-experimental",
	"-latest",
}

var (
	dateStampRe  = regexp.MustCompile(`-\d{8}`)
	versionTagRe = regexp.MustCompile(`(-v\d+|-\d{3})$`)
)

// Clean strips suffix noise, embedded 8-digit date stamps, and trailing
// version qualifiers from a lowercased identifier.
func Clean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	// A provider-prefixed id like "anthropic/claude-..." carries its vendor
	// in the path part; identity rules run on the final segment.
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	for {
		stripped := false
		for _, suf := range noiseSuffixes {
			if strings.HasSuffix(s, suf) && len(s) > len(suf) {
				s = s[:len(s)-len(suf)]
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}
	s = dateStampRe.ReplaceAllString(s, "")
	s = versionTagRe.ReplaceAllString(s, "")
	return s
}

type rule struct {
	match  func(string) bool
	vendor string
	family func(string) string
}

func prefix(p string) func(string) bool {
	return func(s string) bool { return strings.HasPrefix(s, p) }
}

func anyPrefix(ps ...string) func(string) bool {
	return func(s string) bool {
		for _, p := range ps {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
		return false
	}
}

func re(pattern string) func(string) bool {
	r := regexp.MustCompile(pattern)
	return r.MatchString
}

// constant always yields the same family.
func constant(name string) func(string) string {
	return func(string) string { return name }
}

// keywordScan returns "prefix-keyword" for the first keyword found in the
// identifier, or the bare prefix when none matches.
func keywordScan(pfx string, keywords ...string) func(string) string {
	return func(s string) string {
		for _, kw := range keywords {
			if strings.Contains(s, kw) {
				return pfx + "-" + kw
			}
		}
		return pfx
	}
}

// versionStrip drops version components from each dash-separated token,
// keeping only the trailing non-numeric variant tokens.
func versionStrip(s string) string {
	var kept []string
	for _, tok := range strings.Split(s, "-") {
		tok = strings.TrimRight(tok, "0123456789.")
		if tok == "" {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, "-")
}

// majorVersionKeep preserves the integer major version plus any variant
// tokens, dropping minor/patch digits: "gpt-4.1-mini" -> "gpt-4-mini".
var majorRe = regexp.MustCompile(`^([a-z]+)-?(\d+)(?:\.\d+)*([a-z]*)`)

func majorVersionKeep(s string) string {
	m := majorRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	// Preserve the identifier's own joining style: "gpt-4" keeps its dash,
	// "o3" stays fused.
	sep := ""
	if strings.HasPrefix(s[len(m[1]):], "-") {
		sep = "-"
	}
	family := m[1] + sep + m[2] + m[3]
	if rest := s[len(m[0]):]; strings.HasPrefix(rest, "-") {
		if variant := versionStrip(rest[1:]); variant != "" {
			family += "-" + variant
		}
	}
	return family
}

// rules are tested in order; the first match wins.
var rules = []rule{
	{prefix("claude"), "anthropic", keywordScan("claude", "opus", "sonnet", "haiku")},
	{anyPrefix("gpt", "chatgpt"), "openai", majorVersionKeep},
	{re(`^o\d`), "openai", majorVersionKeep},
	{prefix("gemini"), "google", versionStrip},
	{prefix("grok"), "xai", majorVersionKeep},
	{anyPrefix("llama", "meta-llama"), "meta", versionStrip},
	{anyPrefix("mistral", "mixtral", "codestral", "ministral", "devstral"), "mistral", versionStrip},
	{prefix("deepseek"), "deepseek", keywordScan("deepseek", "chat", "coder", "reasoner", "r1", "v3")},
	{anyPrefix("qwen", "qwq"), "alibaba", versionStrip},
	{prefix("glm"), "zhipu", majorVersionKeep},
	{prefix("command"), "cohere", constant("command")},
}

// Parse resolves a raw model identifier. The same input always yields the
// same output, and two identifiers sharing a vendor always share a color.
func Parse(rawID string) Identity {
	key := strings.ToLower(strings.TrimSpace(rawID))
	if i := strings.LastIndex(key, "/"); i >= 0 {
		key = key[i+1:]
	}
	if id, ok := aliases[key]; ok {
		id.Color = VendorColor(id.Vendor)
		return id
	}

	cleaned := Clean(rawID)
	for _, r := range rules {
		if r.match(cleaned) {
			return Identity{
				Vendor: r.vendor,
				Family: r.family(cleaned),
				Color:  VendorColor(r.vendor),
			}
		}
	}
	return Identity{Vendor: "unknown", Family: cleaned, Color: NeutralColor}
}

// providerAliases canonicalizes known provider names reported by logs so
// that e.g. vertex traffic groups with google.
var providerAliases = map[string]string{
	"claude":        "anthropic",
	"gemini":        "google",
	"google-vertex": "google",
	"vertex":        "google",
	"vertexai":      "google",
	"azure":         "openai",
	"azure-openai":  "openai",
	"z.ai":          "zhipu",
	"zai":           "zhipu",
	"qwen":          "alibaba",
}

// CanonicalProvider maps a raw provider name to its canonical vendor name.
func CanonicalProvider(provider string) string {
	p := strings.ToLower(strings.TrimSpace(provider))
	if c, ok := providerAliases[p]; ok {
		return c
	}
	return p
}

// Resolve parses rawID and, when the log supplies an explicit provider,
// lets that provider override the lexically inferred vendor. Color follows
// the final vendor so a vendor always renders in one hue.
func Resolve(provider, rawID string) Identity {
	id := Parse(rawID)
	if provider != "" {
		if v := CanonicalProvider(provider); v != "" {
			id.Vendor = v
			id.Color = VendorColor(v)
		}
	}
	return id
}
