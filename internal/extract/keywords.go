package extract

import "strings"

// Vocabulary for the rule-based strategy. English and Indonesian are
// covered symmetrically, including the informal register (gue/gw/nggak-era
// slang), so callers never declare a language up front.

// actionKeywords mark a clause as independently actionable.
var actionKeywords = []string{
	// English
	"need to", "should", "must", "have to", "plan to", "going to",
	"schedule", "create", "finish", "complete", "start", "meeting",
	"call", "email", "review", "submit", "attend", "visit", "buy",
	"shop", "exercise", "study", "work", "practice", "prepare",
	"organize", "clean", "cook", "pick up", "drop off", "appointment",
	"deadline", "event", "activity", "send", "check", "fix", "write",
	"read", "pay", "book", "watch", "remind", "deploy", "follow up",
	// Indonesian
	"harus", "perlu", "akan", "mau", "jadwal", "buat", "selesai",
	"mulai", "rapat", "telepon", "kumpulkan", "hadiri", "kunjungi",
	"beli", "belanja", "olahraga", "belajar", "kerja", "latihan",
	"siapkan", "organisir", "bersihkan", "masak", "ambil", "antar",
	"janji temu", "acara", "kegiatan", "ngantor", "kuliah", "main",
	"fokus", "cek", "update", "kirim", "terima", "bayar", "tugas",
	"makan", "nonton", "gym", "ujian", "presentasi", "dinner", "lunch",
}

// completedSignals force status completed; checked before in-progress
// signals, first match wins.
var completedSignals = []string{
	"done", "finished", "completed", "already", "accomplished",
	"selesai", "telah selesai", "sudah", "udah", "kelar", "beres",
}

// inProgressSignals force status in_progress.
var inProgressSignals = []string{
	"working on", "starting", "ongoing", "in progress",
	"sedang", "sedang dikerjakan", "sedang berlangsung", "proses",
	"lagi ngerjain", "lagi dikerjakan",
}

// intentPrefixes are leading phrases stripped when deriving a title. Only
// meta verbs that introduce a task are here, never the action itself
// ("schedule a meeting" becomes "Meeting", "call client" stays).
var intentPrefixes = []string{
	"i need to", "i have to", "i want to", "i am going to", "i'm going to",
	"we need to", "need to", "have to", "don't forget to", "remember to",
	"please", "schedule", "set up", "plan to", "going to",
	"saya harus", "saya perlu", "saya mau", "saya akan", "aku harus",
	"aku mau", "gue mau", "gue harus", "gw mau", "gw harus", "tolong",
	"jadwalkan", "harus", "perlu", "mau", "akan",
}

// leadingArticles are dropped from the front of a derived title.
var leadingArticles = []string{"a", "an", "the", "to", "my", "our"}

// danglingWords are trimmed from the ends of a title once date/time
// expressions have been removed ("meeting for <tomorrow>" -> "meeting").
var danglingWords = []string{
	"for", "on", "at", "by", "in", "to", "and",
	"untuk", "pada", "di", "ke", "dan", "sama", "nanti",
}

// containsWord reports whether text contains kw on word boundaries.
// Both arguments must already be lower case.
func containsWord(text, kw string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		if (start == 0 || !isWordByte(text[start-1])) &&
			(end == len(text) || !isWordByte(text[end])) {
			return true
		}
		idx = start + 1
	}
}

func containsAnyWord(text string, kws []string) bool {
	for _, kw := range kws {
		if containsWord(text, kw) {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 'A' && b <= 'Z'
}
