package lexicon

// Built-in categories. Words are lowercase ASCII letters only, so any
// non-letter separator splits an identifier back into its words.
var (
	Adjectives = MustCategory("adjectives", adjectiveWords...)
	Nouns      = MustCategory("nouns", nounWords...)
	Verbs      = MustCategory("verbs", verbWords...)
	Adverbs    = MustCategory("adverbs", adverbWords...)
)

var adjectiveWords = []string{
	"able", "afraid", "agile", "alert", "ancient", "angry", "big", "bitter",
	"black", "blue", "bold", "brave", "brief", "bright", "brown", "busy",
	"calm", "careful", "cheap", "chilly", "clean", "clever", "cold", "cool",
	"crazy", "curly", "curvy", "cute", "dark", "deep", "dirty", "dry",
	"dull", "eager", "early", "easy", "empty", "fair", "fancy", "fast",
	"fat", "fierce", "flat", "fluffy", "free", "fresh", "friendly", "funny",
	"fuzzy", "gentle", "giant", "glad", "golden", "good", "grand", "great",
	"green", "grumpy", "happy", "heavy", "honest", "hot", "huge", "humble",
	"hungry", "icy", "jolly", "kind", "large", "lazy", "light", "little",
	"lively", "loud", "lucky", "mighty", "modern", "neat", "nervous", "new",
	"nice", "noble", "odd", "old", "orange", "pink", "plain", "polite",
	"poor", "proud", "purple", "quick", "quiet", "rare", "red", "rich",
	"round", "rude", "sad", "shaggy", "sharp", "short", "shy", "silent",
	"silly", "slim", "slow", "small", "smart", "smooth", "soft", "solid",
	"sour", "spicy", "steady", "strong", "sweet", "swift", "tall", "tame",
	"tender", "thin", "tidy", "tiny", "tough", "warm", "weak", "wet",
	"white", "wide", "wild", "wise", "witty", "yellow", "young", "zany",
}

var nounWords = []string{
	"ant", "ape", "apple", "baboon", "badger", "bat", "bear", "bee",
	"bird", "bison", "boat", "bobcat", "bulldog", "bus", "camel", "car",
	"cat", "chicken", "cobra", "cow", "crab", "crane", "crow", "cup",
	"deer", "dingo", "dog", "donkey", "dove", "dragon", "duck", "eagle",
	"eel", "elephant", "elk", "emu", "falcon", "ferret", "fish", "fly",
	"fox", "frog", "gecko", "goat", "goose", "gorilla", "hare", "hawk",
	"heron", "hippo", "horse", "husky", "ibis", "jackal", "jaguar", "kangaroo",
	"kiwi", "koala", "lamb", "lemur", "leopard", "lion", "lizard", "llama",
	"lobster", "lynx", "mole", "monkey", "moose", "mouse", "mule", "newt",
	"octopus", "otter", "owl", "ox", "panda", "panther", "parrot", "penguin",
	"pig", "pigeon", "pony", "poodle", "puma", "quail", "rabbit", "rat",
	"raven", "robin", "salmon", "seal", "shark", "sheep", "shrimp", "skunk",
	"sloth", "snail", "snake", "sparrow", "spider", "squid", "starfish", "swan",
	"tiger", "toad", "trout", "turkey", "turtle", "walrus", "wasp", "weasel",
	"whale", "wolf", "wombat", "worm", "yak", "zebra",
}

var verbWords = []string{
	"accepts", "adds", "admires", "agrees", "allows", "answers", "appears", "argues",
	"arrives", "asks", "bakes", "bathes", "begs", "behaves", "believes", "bites",
	"blinks", "boils", "bounces", "breathes", "builds", "burns", "calls", "camps",
	"cares", "carries", "chases", "cheers", "chews", "claps", "climbs", "collects",
	"cooks", "counts", "crawls", "cries", "dances", "dares", "decides", "digs",
	"dives", "doubts", "dreams", "drinks", "drives", "eats", "enjoys", "explains",
	"fails", "falls", "fetches", "fights", "flies", "floats", "follows", "fries",
	"gives", "glows", "grins", "grows", "guards", "hides", "hops", "hugs",
	"hums", "hunts", "invents", "itches", "jokes", "judges", "jumps", "kicks",
	"kneels", "knocks", "laughs", "leaps", "learns", "licks", "lies", "listens",
	"lives", "looks", "loves", "marches", "melts", "moves", "naps", "nods",
	"obeys", "opens", "paints", "peels", "plays", "prays", "pulls", "pushes",
	"reads", "relaxes", "rests", "rolls", "rules", "runs", "rushes", "sails",
	"sings", "sits", "skips", "sleeps", "slides", "smiles", "sneezes", "speaks",
	"spins", "swims", "talks", "teaches", "thinks", "tickles", "travels", "tries",
	"turns", "waits", "walks", "wanders", "warns", "washes", "whistles", "wins",
	"winks", "wishes", "works", "worries", "yawns", "yells", "zooms",
}

var adverbWords = []string{
	"abroad", "absently", "angrily", "anxiously", "awkwardly", "badly", "blindly", "boldly",
	"bravely", "brightly", "briskly", "busily", "calmly", "carefully", "cheerfully", "clearly",
	"closely", "correctly", "deftly", "eagerly", "easily", "elegantly", "evenly", "fairly",
	"faithfully", "fast", "fiercely", "firmly", "fondly", "freely", "gently", "gladly",
	"gracefully", "greedily", "happily", "hastily", "honestly", "hungrily", "innocently", "joyfully",
	"kindly", "lazily", "lightly", "loudly", "madly", "merrily", "neatly", "nervously",
	"noisily", "openly", "patiently", "politely", "poorly", "promptly", "proudly", "quickly",
	"quietly", "rapidly", "rarely", "really", "recklessly", "rudely", "sadly", "safely",
	"seldom", "sharply", "shyly", "silently", "sleepily", "slowly", "smoothly", "softly",
	"solemnly", "speedily", "stealthily", "sternly", "suddenly", "swiftly", "tenderly", "tensely",
	"thankfully", "tightly", "truly", "unexpectedly", "urgently", "vainly", "vastly", "warmly",
	"wearily", "well", "wildly", "wisely", "yearly",
}
