package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/repositories"
)

// ReplyType tags the shape of a chatbot answer.
type ReplyType string

const (
	// ReplyMonastery carries a single monastery matched by name.
	ReplyMonastery ReplyType = "monastery"
	// ReplySectList lists monasteries of one or more sects.
	ReplySectList ReplyType = "sect_list"
	// ReplyLocationList lists monasteries in a town or district.
	ReplyLocationList ReplyType = "location_list"
	// ReplyFestivalList lists monasteries celebrating a festival.
	ReplyFestivalList ReplyType = "festival_list"
	// ReplyGeneral is a canned answer from the general table.
	ReplyGeneral ReplyType = "general"
	// ReplyFallback is the catch-all answer.
	ReplyFallback ReplyType = "fallback"
)

// ErrEmptyChatMessage indicates a blank chat message.
var ErrEmptyChatMessage = errors.New("chat: message is required")

// ChatReply is a chatbot answer. Monastery is set for name matches and
// Monasteries for the list variants; Message is always populated.
type ChatReply struct {
	Type        ReplyType
	Message     string
	Monastery   *domain.Monastery
	Monasteries []domain.Monastery
}

const chatListLimit = 5

var sectVocabulary = []string{"nyingma", "kagyu", "sakya", "gelug", "bon"}

var townVocabulary = []string{"gangtok", "pelling", "yuksom", "mangan", "namchi", "ravangla", "geyzing"}

var districtVocabulary = []string{"east sikkim", "west sikkim", "north sikkim", "south sikkim"}

var festivalVocabulary = []string{"losar", "bumchu", "cham", "saga dawa", "guru rinpoche", "pang lhabsol"}

// generalAnswers is evaluated in order; the first trigger contained in the
// message wins.
var generalAnswers = []struct {
	trigger string
	answer  string
}{
	{"hello", "Hello! How can I help you explore Sikkim's monasteries today?"},
	{"hi", "Hi there! I'm here to help you discover the sacred monasteries of Sikkim."},
	{"help", "I can help you find information about monasteries, sects, festivals, and locations in Sikkim. Just ask me anything!"},
	{"how many", "There are over 100 monasteries in Sikkim, each with its own unique history and spiritual significance."},
	{"oldest", "The oldest monastery in Sikkim is Dubdi Monastery, established in 1701."},
	{"famous", "Some of the most famous monasteries include Rumtek, Pemayangtse, Tashiding, and Enchey."},
	{"sects", "Sikkim has monasteries from five main Buddhist sects: Nyingma, Kagyu, Sakya, Gelug, and Bon."},
	{"festivals", "Monasteries celebrate various festivals like Losar, Bumchu, Cham Dance, and Guru Rinpoche Day."},
	{"visit", "Most monasteries are open to visitors from 6 AM to 6 PM. Some may have entry fees."},
	{"audio", "Yes! Many monasteries have audio guides available in multiple languages including English, Hindi, and Nepali."},
}

const fallbackAnswer = "I'm not sure I understand. Could you ask about a specific monastery, sect, festival, or location in Sikkim?"

var chatGreetings = map[string][]string{
	"english": {
		"Namaste! I'm your monastery guide. Ask me about any monastery, sect, festival, or location in Sikkim.",
		"Welcome! I can help you discover Sikkim's monasteries. What would you like to know?",
		"Hello! I'm here to help you explore the sacred monasteries of Sikkim. How can I assist you?",
	},
	"hindi": {
		"नमस्ते! मैं आपका मठ गाइड हूं। सिक्किम के किसी भी मठ, संप्रदाय, त्योहार या स्थान के बारे में पूछें।",
		"स्वागत है! मैं आपको सिक्किम के मठों की खोज में मदद कर सकता हूं। आप क्या जानना चाहते हैं?",
		"नमस्कार! मैं यहां सिक्किम के पवित्र मठों का अन्वेषण करने में आपकी मदद के लिए हूं।",
	},
	"nepali": {
		"नमस्ते! म सिक्किमको मठ गाइड हुँ। सिक्किमको कुनै पनि मठ, सम्प्रदाय, चाड वा स्थानको बारेमा सोध्नुहोस्।",
		"स्वागत छ! म तपाईंलाई सिक्किमका मठहरू खोज्न मद्दत गर्न सक्छु। तपाईं के जान्न चाहनुहुन्छ?",
		"नमस्कार! म यहाँ सिक्किमका पवित्र मठहरू अन्वेषण गर्न मद्दत गर्न आएको हुँ।",
	},
}

// ChatServiceDeps bundles the dependencies for the chat service.
type ChatServiceDeps struct {
	Monasteries repositories.MonasteryRepository
}

type chatService struct {
	monasteries repositories.MonasteryRepository

	mu  sync.Mutex
	rng *rand.Rand
}

// NewChatService wires dependencies into a ChatService.
func NewChatService(deps ChatServiceDeps) (ChatService, error) {
	if deps.Monasteries == nil {
		return nil, errors.New("chat service: monastery repository is required")
	}
	return &chatService{
		monasteries: deps.Monasteries,
		rng:         rand.New(rand.NewSource(rand.Int63())),
	}, nil
}

// Greeting returns an opening line in the requested language, defaulting to
// english for unknown languages.
func (s *chatService) Greeting(language string) string {
	lines, ok := chatGreetings[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		lines = chatGreetings["english"]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lines[s.rng.Intn(len(lines))]
}

// Reply evaluates the matchers in strict priority order: monastery name,
// sect, location, festival, general table, fallback. First match wins.
func (s *chatService) Reply(ctx context.Context, message string) (ChatReply, error) {
	query := strings.ToLower(strings.TrimSpace(message))
	if query == "" {
		return ChatReply{}, ErrEmptyChatMessage
	}

	records, err := s.monasteries.List(ctx, domain.MonasteryFilter{})
	if err != nil {
		return ChatReply{}, fmt.Errorf("chat: list monasteries: %w", err)
	}

	if m, ok := matchByName(query, records); ok {
		return ChatReply{
			Type:      ReplyMonastery,
			Message:   monasteryCard(m),
			Monastery: &m,
		}, nil
	}
	if matches := matchBySect(query, records); len(matches) > 0 {
		return sectReply(matches), nil
	}
	if matches := matchByLocation(query, records); len(matches) > 0 {
		return locationReply(matches), nil
	}
	if matches, terms := matchByFestival(query, records); len(matches) > 0 {
		return festivalReply(matches, terms), nil
	}
	for _, entry := range generalAnswers {
		if strings.Contains(query, entry.trigger) {
			return ChatReply{Type: ReplyGeneral, Message: entry.answer}, nil
		}
	}
	return ChatReply{Type: ReplyFallback, Message: fallbackAnswer}, nil
}

// matchByName finds the first monastery, in input order, whose full name
// contains the query, is contained by it, or shares a whole whitespace
// delimited word with it. Whole-word comparison keeps plural forms such as
// "monasteries" from matching every name.
func matchByName(query string, records []domain.Monastery) (domain.Monastery, bool) {
	queryWords := make(map[string]struct{})
	for _, word := range strings.Fields(query) {
		queryWords[word] = struct{}{}
	}

	for _, m := range records {
		name := strings.ToLower(m.Name)
		if strings.Contains(name, query) || strings.Contains(query, name) {
			return m, true
		}
		for _, word := range strings.Fields(name) {
			if _, ok := queryWords[word]; ok {
				return m, true
			}
		}
	}
	return domain.Monastery{}, false
}

func matchBySect(query string, records []domain.Monastery) []domain.Monastery {
	matched := make(map[string]struct{})
	for _, sect := range sectVocabulary {
		if strings.Contains(query, sect) {
			matched[sect] = struct{}{}
		}
	}
	if len(matched) == 0 {
		return nil
	}

	var out []domain.Monastery
	for _, m := range records {
		if _, ok := matched[strings.ToLower(string(m.Sect))]; ok {
			out = append(out, m)
		}
	}
	return out
}

func matchByLocation(query string, records []domain.Monastery) []domain.Monastery {
	var towns, districts []string
	for _, town := range townVocabulary {
		if strings.Contains(query, town) {
			towns = append(towns, town)
		}
	}
	for _, district := range districtVocabulary {
		if strings.Contains(query, district) {
			districts = append(districts, district)
		}
	}
	if len(towns) == 0 && len(districts) == 0 {
		return nil
	}

	var out []domain.Monastery
	for _, m := range records {
		location := strings.ToLower(m.Location)
		district := strings.ToLower(m.District)
		hit := false
		for _, town := range towns {
			if strings.Contains(location, town) {
				hit = true
				break
			}
		}
		if !hit {
			for _, d := range districts {
				if district == d {
					hit = true
					break
				}
			}
		}
		if hit {
			out = append(out, m)
		}
	}
	return out
}

func matchByFestival(query string, records []domain.Monastery) ([]domain.Monastery, []string) {
	var terms []string
	for _, festival := range festivalVocabulary {
		if strings.Contains(query, festival) {
			terms = append(terms, festival)
		}
	}
	if len(terms) == 0 {
		return nil, nil
	}

	var out []domain.Monastery
	for _, m := range records {
		for _, term := range terms {
			if m.HasFestival(term) {
				out = append(out, m)
				break
			}
		}
	}
	return out, terms
}

func monasteryCard(m domain.Monastery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.Name)
	fmt.Fprintf(&b, "Sect: %s\n", m.Sect)
	fmt.Fprintf(&b, "Location: %s\n", m.District)
	fmt.Fprintf(&b, "Established: %s\n", m.Established)
	b.WriteString(m.Description)
	return b.String()
}

func sectReply(matches []domain.Monastery) ChatReply {
	sect := matches[0].Sect
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d %s monasteries in Sikkim:\n\n", len(matches), sect)
	writeNumberedList(&b, matches, func(m domain.Monastery) string { return m.District })
	fmt.Fprintf(&b, "\n\nWould you like to know more about any specific %s monastery?", sect)
	return ChatReply{Type: ReplySectList, Message: b.String(), Monasteries: matches}
}

func locationReply(matches []domain.Monastery) ChatReply {
	place := matches[0].District
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d monasteries in %s:\n\n", len(matches), place)
	writeNumberedList(&b, matches, func(m domain.Monastery) string { return string(m.Sect) })
	fmt.Fprintf(&b, "\n\nWould you like to know more about any specific monastery in %s?", place)
	return ChatReply{Type: ReplyLocationList, Message: b.String(), Monasteries: matches}
}

func festivalReply(matches []domain.Monastery, terms []string) ChatReply {
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d monasteries that celebrate festivals related to your query:\n\n", len(matches))
	for i, m := range matches {
		if i >= chatListLimit {
			break
		}
		var relevant []string
		for _, f := range m.Festivals {
			for _, term := range terms {
				if strings.Contains(strings.ToLower(f.Name), term) {
					relevant = append(relevant, f.Name)
					break
				}
			}
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, m.Name, strings.Join(relevant, ", "))
	}
	if len(matches) > chatListLimit {
		fmt.Fprintf(&b, "\n...and %d more.", len(matches)-chatListLimit)
	}
	return ChatReply{Type: ReplyFestivalList, Message: b.String(), Monasteries: matches}
}

// writeNumberedList renders at most five "name (qualifier)" lines in source
// order and the "...and N more." suffix when matches overflow.
func writeNumberedList(b *strings.Builder, matches []domain.Monastery, qualifier func(domain.Monastery) string) {
	for i, m := range matches {
		if i >= chatListLimit {
			break
		}
		fmt.Fprintf(b, "%d. %s (%s)\n", i+1, m.Name, qualifier(m))
	}
	if len(matches) > chatListLimit {
		fmt.Fprintf(b, "\n...and %d more.", len(matches)-chatListLimit)
	}
}
