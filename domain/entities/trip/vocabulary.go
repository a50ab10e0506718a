package trip

import (
	"strings"
)

// AllFilter disables the month or day filter
const AllFilter = "all"

var (
	cityData = map[string]string{
		"chicago":       "chicago.csv",
		"new york city": "new_york_city.csv",
		"washington":    "washington.csv",
	}

	// months index matches the month number, january = 1
	months = []string{AllFilter, "january", "february", "march", "april", "may", "june"}

	days = []string{AllFilter, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Cities returns the supported city names in a stable order
func Cities() []string {
	return []string{"chicago", "new york city", "washington"}
}

// Months returns the month vocabulary, "all" included
func Months() []string {
	return append([]string(nil), months...)
}

// Days returns the day vocabulary, "all" included
func Days() []string {
	return append([]string(nil), days...)
}

// SourceFile returns the CSV file name that backs the given city
func SourceFile(city string) (string, bool) {
	filename, ok := cityData[city]
	return filename, ok
}

// MonthIndex returns the 1-based month number of a month name, or 0 if the name is not part of the vocabulary
func MonthIndex(month string) int {
	month = normalize(month)
	for idx := 1; idx < len(months); idx++ {
		if months[idx] == month {
			return idx
		}
	}
	return 0
}

// MonthName returns the title-cased name of a month number between 1 and 6
func MonthName(month int) (string, bool) {
	if month < 1 || month >= len(months) {
		return "", false
	}
	return Title(months[month]), true
}

// ParseCity classifies the user input against the city vocabulary
func ParseCity(input string) (string, bool) {
	city := normalize(input)
	_, ok := cityData[city]
	return city, ok
}

// ParseMonth classifies the user input against the month vocabulary
func ParseMonth(input string) (string, bool) {
	return parseVocabulary(input, months)
}

// ParseDay classifies the user input against the day vocabulary
func ParseDay(input string) (string, bool) {
	return parseVocabulary(input, days)
}

// Title upper-cases the first letter of every word, e.g. "monday" -> "Monday"
func Title(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for idx, word := range words {
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func parseVocabulary(input string, vocabulary []string) (string, bool) {
	value := normalize(input)
	for _, candidate := range vocabulary {
		if candidate == value {
			return value, true
		}
	}
	return value, false
}

func normalize(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}
