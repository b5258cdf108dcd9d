package sentiment

import (
	"math"
	"strings"
	"unicode"
)

const (
	MAX_POLARITY = 5
	// VADER valences run -4..4.
	VADER_SCALE = float64(MAX_POLARITY) / 4
)

// polarities is what Score looks tokens up in: the VADER word list rescaled to
// whole numbers in -5..5, with the curated lexicon laid over it.
var polarities = buildPolarities(analyzer.Lexicon, lexicon)

func buildPolarities(vader map[string]float64, curated map[string]int) map[string]int {
	out := make(map[string]int, len(vader)+len(curated))
	for word, valence := range vader {
		if !isPlainToken(word) {
			continue
		}
		p := int(math.Round(valence * VADER_SCALE))
		p = max(-MAX_POLARITY, min(MAX_POLARITY, p))
		if p != 0 {
			out[word] = p
		}
	}
	for word, p := range curated {
		out[word] = p
	}
	return out
}

// isPlainToken reports whether Tokenize could ever produce word. Emoticons and
// mixed-case entries are skipped.
func isPlainToken(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-') {
			return false
		}
	}
	return word == strings.ToLower(word)
}

// lexicon maps lowercase tokens to polarity in the range -5..5, in the style
// of the AFINN word list. Entries here override the VADER-derived values.
var lexicon = map[string]int{
	"abandon": -2, "abandoned": -2, "abandons": -2, "abducted": -2, "abuse": -3, "abused": -3,
	"abusive": -3, "accept": 1, "accepted": 1, "accident": -2, "accomplish": 2, "accomplished": 2,
	"accusation": -2, "accuse": -2, "accused": -2, "ache": -2, "aching": -2, "admire": 3,
	"admired": 3, "adorable": 3, "adore": 3, "adored": 3, "advantage": 2, "adventure": 2,
	"afraid": -2, "aggressive": -2, "agony": -3, "agree": 1, "agreed": 1, "alarm": -2,
	"alarmed": -2, "alone": -2, "amazed": 2, "amazing": 4, "amuse": 3, "amused": 3,
	"amusing": 3, "anger": -3, "angry": -3, "anguish": -3, "annoy": -2, "annoyed": -2,
	"annoying": -2, "anxious": -2, "apathy": -3, "apologize": -1, "appalling": -2, "appreciate": 2,
	"appreciated": 2, "approval": 2, "approve": 2, "ashamed": -2, "assault": -2, "attack": -1,
	"attractive": 2, "awesome": 4, "awful": -3, "awkward": -2, "bad": -3, "badly": -3,
	"ban": -2, "bankrupt": -3, "banned": -2, "beautiful": 3, "beloved": 3, "benefit": 2,
	"best": 3, "betray": -3, "betrayed": -3, "better": 2, "bias": -1, "bitch": -5,
	"bitter": -2, "blame": -2, "blamed": -2, "bless": 2, "blessed": 3, "blessing": 3,
	"bliss": 3, "bloody": -3, "boost": 1, "bored": -2, "boring": -3, "bother": -2,
	"brave": 2, "breakthrough": 3, "brilliant": 4, "broken": -1, "brutal": -3, "bullshit": -4,
	"bully": -2, "burden": -2, "calm": 2, "cancer": -1, "care": 2, "careful": 2,
	"careless": -2, "celebrate": 3, "chaos": -2, "charm": 3, "charming": 3, "cheat": -3,
	"cheated": -3, "cheer": 2, "cheerful": 2, "clever": 2, "clueless": -2, "comfort": 2,
	"comfortable": 2, "commend": 2, "confident": 2, "confused": -2, "congrats": 2, "congratulations": 2,
	"contempt": -2, "cool": 1, "corrupt": -3, "courage": 2, "coward": -2, "crap": -3,
	"crash": -2, "crazy": -2, "creative": 2, "crime": -3, "crisis": -3, "critical": -2,
	"criticism": -2, "cruel": -3, "crush": 1, "cry": -1, "crying": -2, "cute": 2,
	"damage": -3, "damn": -2, "danger": -2, "dangerous": -2, "dead": -3, "deadly": -3,
	"death": -2, "deceive": -3, "defeat": -2, "delight": 3, "delighted": 3, "delightful": 3,
	"denied": -2, "depressed": -2, "depressing": -2, "depression": -2, "despair": -3, "desperate": -3,
	"destroy": -3, "destroyed": -3, "destruction": -3, "disappoint": -2, "disappointed": -2, "disappointing": -2,
	"disaster": -2, "disgust": -3, "disgusting": -3, "dislike": -2, "dismal": -2, "disrespect": -2,
	"distress": -2, "disturb": -2, "dope": 3, "doubt": -1, "drag": -1, "dread": -2,
	"dumb": -3, "eager": 2, "easy": 1, "ecstatic": 4, "effective": 2, "elegant": 2,
	"embarrassed": -2, "embarrassing": -2, "encourage": 2, "energetic": 2, "enjoy": 2, "enjoyed": 2,
	"enjoying": 2, "enthusiastic": 3, "epic": 3, "error": -2, "evil": -3, "excellent": 3,
	"excited": 3, "exciting": 3, "exhausted": -2, "fabulous": 4, "fail": -2, "failed": -2,
	"failure": -2, "fair": 2, "fake": -3, "fantastic": 4, "fascinating": 3, "fault": -2,
	"fear": -2, "fearful": -2, "fine": 2, "fool": -2, "foolish": -2, "forgive": 1,
	"fortunate": 2, "fraud": -4, "free": 1, "fresh": 1, "friendly": 2, "frightened": -2,
	"frustrated": -2, "frustrating": -2, "fuck": -4, "fucked": -4, "fucking": -4, "fun": 4,
	"funny": 4, "furious": -3, "generous": 2, "genius": 3, "gentle": 2, "glad": 3,
	"gloomy": -2, "glorious": 2, "good": 3, "gorgeous": 3, "grateful": 3, "great": 3,
	"greed": -3, "greedy": -2, "grief": -2, "gross": -2, "guilty": -3, "happiness": 3,
	"happy": 3, "harm": -2, "harsh": -2, "hate": -3, "hated": -3, "hateful": -3,
	"hates": -3, "hating": -3, "heartbreaking": -3, "heaven": 2, "hell": -4, "help": 2,
	"helpful": 2, "helpless": -2, "hero": 2, "hilarious": 2, "honest": 2, "hope": 2,
	"hopeful": 2, "hopeless": -2, "horrible": -3, "horrific": -3, "hostile": -2, "hug": 2,
	"hurt": -2, "hurting": -2, "idiot": -3, "idiotic": -3, "ignorant": -2, "ignore": -1,
	"ill": -2, "impressive": 3, "incompetent": -2, "incredible": 3, "inspire": 2, "inspired": 2,
	"inspiring": 3, "insult": -2, "interesting": 2, "irritating": -3, "jealous": -2, "joke": 2,
	"jolly": 2, "joy": 3, "joyful": 3, "kill": -3, "killed": -3, "kind": 2,
	"kindness": 2, "lame": -2, "laugh": 1, "laughing": 1, "lazy": -1, "liar": -3,
	"lie": -1, "lies": -2, "like": 2, "liked": 2, "lol": 3, "lonely": -2,
	"loser": -3, "loss": -3, "lost": -3, "love": 3, "loved": 3, "lovely": 3,
	"loves": 3, "loving": 2, "luck": 3, "lucky": 3, "mad": -3, "masterpiece": 4,
	"mess": -2, "miserable": -3, "misery": -2, "miss": -2, "mistake": -2, "mourn": -2,
	"nasty": -3, "neat": 2, "negative": -2, "nervous": -2, "nice": 3, "nightmare": -3,
	"noble": 2, "nonsense": -2, "offend": -2, "offended": -2, "ok": 2, "okay": 2,
	"optimistic": 2, "outrage": -3, "outstanding": 5, "pain": -2, "painful": -2, "panic": -3,
	"pathetic": -2, "peace": 2, "peaceful": 2, "perfect": 3, "pissed": -4, "pity": -2,
	"pleasant": 3, "please": 1, "pleased": 3, "pleasure": 3, "poor": -2, "popular": 3,
	"positive": 2, "pretty": 1, "pride": 2, "problem": -2, "problems": -2, "proud": 2,
	"punish": -2, "rage": -2, "recommend": 2, "regret": -2, "reject": -1, "rejected": -1,
	"relax": 2, "relieved": 2, "respect": 2, "ridiculous": -3, "rude": -2, "ruin": -2,
	"ruined": -2, "sad": -2, "sadly": -2, "safe": 1, "satisfied": 2, "scam": -2,
	"scared": -2, "scary": -2, "screwed": -2, "selfish": -3, "shame": -2, "shit": -4,
	"shitty": -3, "shock": -2, "sick": -2, "silly": -1, "smart": 1, "smile": 2,
	"smiling": 2, "solid": 2, "sorry": -1, "splendid": 3, "stolen": -2, "strong": 2,
	"struggle": -2, "stuck": -2, "stupid": -2, "success": 2, "successful": 3, "suck": -3,
	"sucks": -3, "suffer": -2, "suffering": -2, "super": 3, "superb": 5, "support": 2,
	"sweet": 2, "terrible": -3, "terrific": 4, "terror": -3, "thank": 2, "thankful": 2,
	"thanks": 2, "threat": -2, "thrilled": 5, "tired": -2, "toxic": -3, "tragedy": -2,
	"tragic": -2, "trash": -2, "trouble": -2, "true": 2, "trust": 1, "ugly": -3,
	"unfair": -2, "unhappy": -2, "upset": -2, "useful": 2, "useless": -2, "violence": -3,
	"vulnerable": -2, "want": 1, "war": -2, "warm": 1, "waste": -1, "weak": -2,
	"weird": -2, "welcome": 2, "win": 4, "winner": 4, "wish": 1, "wonderful": 4,
	"worried": -3, "worry": -3, "worse": -3, "worst": -3, "worth": 2, "worthless": -2,
	"wow": 4, "wrong": -2, "yay": 2, "yeah": 1, "yes": 1, "yummy": 3,
}
