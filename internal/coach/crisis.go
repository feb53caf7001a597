package coach

import "strings"

// Crisis categories. A match short-circuits coaching entirely: the
// user gets a referral to professional help and the message never
// reaches the model or the quota ledger.
const (
	CrisisSuicide       = "suicide"
	CrisisSelfHarm      = "self_harm"
	CrisisDomesticAbuse = "domestic_abuse"
	CrisisAbuse         = "abuse"
	CrisisChildAbuse    = "child_abuse"
	CrisisSubstance     = "substance_abuse"
)

// Category order matters: the most acute categories are checked first
// so a message matching several gets the most urgent referral.
var crisisOrder = []string{
	CrisisSuicide,
	CrisisSelfHarm,
	CrisisChildAbuse,
	CrisisDomesticAbuse,
	CrisisAbuse,
	CrisisSubstance,
}

var crisisKeywords = map[string][]string{
	CrisisSuicide: {
		"kill myself", "end my life", "suicide", "suicidal", "want to die",
		"better off dead", "no point living", "end it all", "take my own life",
	},
	CrisisSelfHarm: {
		"cut myself", "hurt myself", "self harm", "self-harm", "cutting",
		"burning myself", "self injury", "self-injury",
	},
	CrisisDomesticAbuse: {
		"hitting me", "beats me", "domestic violence", "domestic abuse",
		"physically hurts me", "threatens to hurt me", "afraid of my partner",
		"partner hits me", "scared of going home", "won't let me leave",
	},
	CrisisAbuse: {
		"being abused", "sexually abused", "physically abused",
		"emotionally abused", "sexual assault", "being raped",
	},
	CrisisChildAbuse: {
		"child abuse", "child is being abused", "hurting a child",
		"child being molested", "child is in danger", "someone hurting my child",
		"minor being abused",
	},
	CrisisSubstance: {
		"drug addiction", "can't stop using", "overdosed", "overdosing",
		"substance abuse", "drinking too much", "alcoholic", "drug abuse",
		"chemical dependency", "can't quit",
	},
}

var crisisResponses = map[string]string{
	CrisisSuicide:       "I'm really concerned about your safety. If you're thinking about harming yourself, please know you're not alone. I can't provide the help you need, but I strongly encourage you to call your local emergency number right now, or reach out to a suicide prevention hotline (for example, Samaritans at 116 123 in the UK, or find your local hotline at https://findahelpline.com).",
	CrisisSelfHarm:      "I hear that you're struggling with thoughts of self-harm. This is serious, and I want you to get proper support. Please reach out to a crisis helpline or trusted professional right away (for example, Samaritans at 116 123 in the UK, or find your local hotline at https://findahelpline.com). If you're in immediate danger, please call emergency services.",
	CrisisDomesticAbuse: "I hear how difficult this is. I can't provide the right kind of support for this situation, but it's really important to talk to someone who can help you stay safe. If you're in immediate danger, please call emergency services. You can also reach out to a domestic violence hotline (for example, the National Domestic Abuse Helpline at 0808 2000 247 in the UK, or find your local resource at https://findahelpline.com).",
	CrisisAbuse:         "I'm deeply concerned about what you're experiencing. Abuse is never okay, and you deserve support and safety. I can't provide the specialized help you need, but please reach out to professionals who can. If you're in immediate danger, call emergency services, or find your local resource at https://findahelpline.com.",
	CrisisChildAbuse:    "I'm extremely concerned about child safety. This requires immediate attention from proper authorities. Please contact emergency services immediately if a child is in immediate danger. You can also contact child protection services, for example the NSPCC Helpline at 0808 800 5000 in the UK, or Childline at 0800 1111.",
	CrisisSubstance:     "I'm concerned about what you're sharing regarding substance use. I can't provide the specialized help you need, but please reach out to professionals who can. If you're in immediate danger, call emergency services. You can contact a substance abuse helpline (for example, SAMHSA's helpline at 1-800-662-4357 in the US, or find your local resource at https://findahelpline.com).",
}

// DetectCrisis scans a message for crisis signals. The match is a
// plain case-insensitive substring check so nothing slips through on
// punctuation or casing.
func DetectCrisis(message string) (category string, found bool) {
	lower := strings.ToLower(message)
	for _, cat := range crisisOrder {
		for _, kw := range crisisKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat, true
			}
		}
	}
	return "", false
}

// CrisisResponse returns the referral text for a detected category.
func CrisisResponse(category string) string {
	if r, ok := crisisResponses[category]; ok {
		return r
	}
	return "I'm concerned about what you're sharing. Please reach out to a crisis helpline or trusted professional who can provide proper support (for example, find your local helpline at https://findahelpline.com). If you're in immediate danger, please call emergency services."
}
