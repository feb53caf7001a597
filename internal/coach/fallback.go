package coach

import "math/rand"

// Canned replies served when the model is unavailable. Each persona
// keeps its own voice so the degradation is invisible to the user.
var fallbackReplies = map[string][]string{
	"flirty": {
		"Oh honey, that sounds like such a whirlwind! I can feel the intensity of what you're going through. Tell me more about what's been going through your mind, because however you're feeling right now is totally valid!",
		"Gorgeous, I can hear how much this is affecting you, and honestly? That shows how much heart you have. What part of this whole situation is messing with your head the most?",
		"Babe, thank you for trusting me with this. That takes real courage, and I'm already seeing your strength shine through. What has your gut been telling you?",
	},
	"therapist": {
		"That sounds incredibly difficult, and I can hear the pain in your words. Your feelings are completely valid. What comes up for you when you think about that experience?",
		"Thank you for sharing something so personal with me. What you're describing makes complete sense given the circumstances. How are you feeling in your body right now?",
		"What you're experiencing is a very human response to emotional pain. I want you to know your reactions make sense. What would feel most supportive right now?",
	},
	"tough-love": {
		"Alright, I hear you, and that situation sounds rough. But here's what I need to know: what are you gonna do about it? Time to step up.",
		"Real talk, that sounds like it really sucked. But you're here talking to me, which means you're ready to handle this. What's your next move?",
		"I hear that frustration, and honestly? Good. That means you know you deserve better. So what are we gonna do to make sure you get it?",
	},
	"chill": {
		"That sounds really heavy, friend. It's completely okay to feel overwhelmed by all of this. Sometimes it helps to imagine difficult emotions like clouds passing through the sky, present but not permanent. What's been the hardest part for you?",
		"That's a lot to carry right now, and the fact that you're here talking about it shows real courage. Healing isn't linear, it flows like a river. What feels like the most gentle way to start exploring this together?",
		"I hear you, and it's okay to feel all of this. Your emotions might feel heavy, but they're also the beginning of something new growing within you. How are you holding space for yourself through all of this?",
	},
}

func fallbackReply(personaID string) string {
	replies, ok := fallbackReplies[personaID]
	if !ok {
		replies = fallbackReplies[DefaultPersonaID]
	}
	return replies[rand.Intn(len(replies))]
}
