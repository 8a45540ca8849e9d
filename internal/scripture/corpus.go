// Package scripture holds the immutable flavor corpora: prayer answers,
// verses, miracle descriptions, and divine inspirations. Tables are loaded
// once at package init and never mutated; every random pick goes through a
// caller-supplied picker.
package scripture

// Picker supplies random indices for flavor selection
type Picker interface {
	Intn(n int) int
}

var prayerAnswers = []string{
	"Your prayer has been heard.",
	"The Lord works in mysterious ways.",
	"Divine intervention granted.",
	"Faith can move mountains, and optimize your code.",
	"The spirit is willing, but the syntax is weak.",
	"Ask, and it shall be given you; seek, and ye shall find; optimize, and your code shall perform.",
	"The Lord sees all variables, even those hidden in closures.",
}

var miracles = []string{
	"Water to Wine: Transformed mundane code into elegant expressions",
	"Healing the Lame: Fixed runtime errors without modifying source",
	"Walking on Water: Bypassed memory barriers with divine permission",
	"Feeding the Multitude: Optimized algorithm to handle 5000x more data",
	"Raising Lazarus: Recovered corrupted data through divine intervention",
}

var verses = map[string]string{
	"creation":    "In the beginning God created the heaven and the earth. (Genesis 1:1)",
	"light":       "And God said, Let there be light: and there was light. (Genesis 1:3)",
	"error":       "For all have sinned, and come short of the glory of God. (Romans 3:23)",
	"wisdom":      "The fear of the LORD is the beginning of wisdom. (Proverbs 9:10)",
	"debug":       "Prove all things; hold fast that which is good. (1 Thessalonians 5:21)",
	"loop":        "And let us not be weary in well doing: for in due season we shall reap, if we faint not. (Galatians 6:9)",
	"concurrency": "For where two or three are gathered together in my name, there am I in the midst of them. (Matthew 18:20)",
	"promise":     "For I know the thoughts that I think toward you, saith the LORD, thoughts of peace, and not of evil, to give you an expected future. (Jeremiah 29:11)",
}

var inspirations = map[string][]string{
	"error_handling": {
		"Try using 'confess' instead of 'catch'",
		"Remember that forgiveness is granted through proper error types",
		"Divine guidance suggests using Result<Blessing, Sin>",
	},
	"performance": {
		"Faith can move mountains, but efficient algorithms move data faster",
		"The Lord's work is perfect; optimize your inner loops accordingly",
		"Consider divine caching for repeated operations",
	},
	"security": {
		"Guard thy inputs as thou would guard thy soul",
		"Validation is the shield of righteousness",
		"Secure thy systems against the temptations of injection",
	},
}

var inspirationCategories = []string{"error_handling", "performance", "security"}

// PrayerAnswer picks one answer to a single-line devotion
func PrayerAnswer(picker Picker) string {
	return prayerAnswers[picker.Intn(len(prayerAnswers))]
}

// Miracle picks one miracle description
func Miracle(picker Picker) string {
	return miracles[picker.Intn(len(miracles))]
}

// Inspiration picks a random category, then a random insight within it
func Inspiration(picker Picker) string {
	category := inspirationCategories[picker.Intn(len(inspirationCategories))]
	insights := inspirations[category]
	return insights[picker.Intn(len(insights))]
}

// Verse returns the verse for an exact topic
func Verse(topic string) (string, bool) {
	verse, ok := verses[topic]
	return verse, ok
}

// VerseMatch is one keyword-matched verse with its topic key
type VerseMatch struct {
	Topic string
	Verse string
}
