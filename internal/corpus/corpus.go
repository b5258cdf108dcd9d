// Package corpus holds the static word tables used by the vocabulary ranker.
package corpus

// StopWords are common English words left out of vocabulary rankings.
var StopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {}, "all": {}, "am": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "aren't": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {}, "between": {}, "both": {}, "but": {},
	"by": {}, "can": {}, "can't": {}, "cannot": {}, "could": {}, "couldn't": {}, "did": {}, "didn't": {},
	"do": {}, "does": {}, "doesn't": {}, "doing": {}, "don": {}, "don't": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "further": {}, "had": {}, "hadn't": {}, "has": {},
	"hasn't": {}, "have": {}, "haven't": {}, "having": {}, "he": {}, "he'd": {}, "he'll": {}, "he's": {},
	"her": {}, "here": {}, "here's": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "how's": {}, "i": {}, "i'd": {}, "i'll": {}, "i'm": {}, "i've": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "isn't": {}, "it": {}, "it's": {}, "its": {}, "itself": {},
	"let's": {}, "me": {}, "more": {}, "most": {}, "mustn't": {}, "my": {}, "myself": {}, "no": {},
	"nor": {}, "not": {}, "of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "ought": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {},
	"same": {}, "shan't": {}, "she": {}, "she'd": {}, "she'll": {}, "she's": {}, "should": {}, "shouldn't": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "that's": {}, "the": {}, "their": {},
	"theirs": {}, "them": {}, "themselves": {}, "then": {}, "there": {}, "there's": {}, "these": {}, "they": {},
	"they'd": {}, "they'll": {}, "they're": {}, "they've": {}, "this": {}, "those": {}, "through": {}, "to": {},
	"too": {}, "under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "wasn't": {}, "we": {},
	"we'd": {}, "we'll": {}, "we're": {}, "we've": {}, "were": {}, "weren't": {}, "what": {}, "what's": {},
	"when": {}, "when's": {}, "where": {}, "where's": {}, "which": {}, "while": {}, "who": {}, "who's": {},
	"whom": {}, "why": {}, "why's": {}, "with": {}, "won't": {}, "would": {}, "wouldn't": {}, "you": {},
	"you'd": {}, "you'll": {}, "you're": {}, "you've": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
	"im": {}, "like": {}, "just": {}, "get": {}, "got": {}, "also": {}, "really": {}, "one": {},
	"even": {}, "people": {}, "think": {}, "see": {}, "know": {}, "good": {}, "still": {}, "make": {},
	"things": {}, "thing": {},
}

// IDF holds inverse document frequency weights for common English nouns.
// Lower values mean the word is more common.
var IDF = map[string]float64{
	"algorithm": 8.0, "analysis": 6.9, "answer": 5.5, "art": 4.8, "artificial": 7.5, "biology": 7.4,
	"blockchain": 8.5, "body": 5.6, "book": 5.8, "business": 5.3, "campaign": 7.2, "car": 5.8,
	"case": 3.9, "change": 5.5, "character": 6.2, "chemistry": 7.7, "child": 3.3, "city": 5.4,
	"client": 7.5, "climate": 7.3, "code": 7.0, "community": 5.7, "company": 4.2, "computer": 6.2,
	"country": 5.2, "crypto": 8.2, "culture": 6.3, "data": 6.4, "database": 7.7, "day": 2.5,
	"deep": 7.0, "democracy": 7.4, "design": 6.3, "economy": 6.6, "election": 7.0, "emotion": 6.8,
	"energy": 6.7, "environment": 6.9, "eye": 3.4, "fact": 4.6, "family": 4.8, "father": 5.8,
	"feeling": 6.4, "food": 5.6, "framework": 7.8, "freedom": 6.9, "friend": 5.5, "galaxy": 8.6,
	"game": 5.2, "government": 4.1, "group": 4.4, "hand": 3.1, "hardware": 7.5, "health": 5.6,
	"history": 4.7, "home": 4.9, "human": 5.8, "idea": 5.3, "information": 5.1, "intelligence": 7.2,
	"interface": 7.6, "internet": 6.0, "job": 5.1, "justice": 7.1, "language": 6.5, "law": 5.4,
	"learning": 6.8, "life": 3.0, "love": 4.5, "machine": 6.7, "man": 2.8, "market": 5.8,
	"mathematics": 7.8, "mind": 5.9, "model": 6.5, "moment": 5.8, "money": 5.0, "mother": 5.7,
	"movie": 5.7, "music": 5.7, "nature": 6.1, "network": 6.8, "neural": 8.1, "news": 5.4,
	"number": 4.3, "part": 3.2, "people": 2.0, "person": 2.2, "philosophy": 7.9, "phone": 6.1,
	"physics": 7.5, "place": 3.6, "planet": 8.4, "point": 4.0, "policy": 6.6, "politics": 6.4,
	"power": 5.3, "president": 6.1, "privacy": 7.3, "problem": 4.5, "product": 6.0, "program": 6.1,
	"psychology": 7.6, "quantum": 8.8, "question": 5.2, "reason": 5.2, "relativity": 8.9, "research": 6.2,
	"result": 5.3, "rights": 6.5, "role": 5.4, "room": 5.6, "school": 5.3, "science": 5.9,
	"security": 7.1, "server": 7.4, "service": 5.5, "show": 5.1, "society": 5.9, "sociology": 7.8,
	"software": 7.2, "space": 7.1, "star": 8.2, "story": 5.1, "student": 6.0, "sustainability": 8.1,
	"system": 5.0, "teacher": 6.2, "team": 5.9, "technology": 6.5, "time": 1.8, "training": 6.9,
	"universe": 8.3, "vote": 6.8, "war": 4.9, "water": 5.5, "way": 2.4, "week": 3.8,
	"woman": 3.5, "work": 3.7, "world": 2.9, "year": 2.3,
}

func IsStopWord(word string) bool {
	_, ok := StopWords[word]
	return ok
}

// LookupIDF returns the table weight for word and whether it was present.
func LookupIDF(word string) (float64, bool) {
	v, ok := IDF[word]
	return v, ok
}
