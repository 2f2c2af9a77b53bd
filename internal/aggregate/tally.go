package aggregate

import (
	"github.com/nao1215/chatwrapped/internal/classify"
	"github.com/nao1215/chatwrapped/internal/model"
	"github.com/nao1215/chatwrapped/internal/tokenize"
)

// Tally holds the raw counts of one aggregation.
type Tally struct {
	// Topics has one entry per declared topic, in declaration order.
	Topics []model.TopicCount

	// Words has one entry per distinct word, in first-seen order.
	Words []WordCount

	// Fragments is the number of fragments counted.
	Fragments int
}

// WordCount is a word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Count classifies and tokenizes every fragment.
func Count(fragments []string) *Tally {
	topics := model.Topics()
	t := &Tally{
		Topics:    make([]model.TopicCount, len(topics)),
		Words:     make([]WordCount, 0),
		Fragments: len(fragments),
	}
	topicIndex := make(map[model.Topic]int, len(topics))
	for i, topic := range topics {
		t.Topics[i] = model.TopicCount{Topic: topic}
		topicIndex[topic] = i
	}

	wordIndex := make(map[string]int)
	for _, fragment := range fragments {
		t.Topics[topicIndex[classify.Classify(fragment)]].Count++

		for _, w := range tokenize.Tokenize(fragment) {
			if i, ok := wordIndex[w]; ok {
				t.Words[i].Count++
				continue
			}
			wordIndex[w] = len(t.Words)
			t.Words = append(t.Words, WordCount{Word: w, Count: 1})
		}
	}
	return t
}

// TopicCount returns the fragment count of topic.
func (t *Tally) TopicCount(topic model.Topic) int {
	for _, tc := range t.Topics {
		if tc.Topic == topic {
			return tc.Count
		}
	}
	return 0
}
