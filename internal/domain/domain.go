package domain

import "time"

// Topic is a titled group of semantically related sentences reduced to a
// bounded bullet list. The JSON shape matches what renderers consume.
type Topic struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Bullets       []string `json:"bullets"`
	SentenceCount int      `json:"sentenceCount"`
}

// DeckPlan is the top-level output of one pipeline run. Topics are ordered
// by sentence count, descending. SlideCount reserves two extra slots for the
// title and summary slides.
type DeckPlan struct {
	Topics         []Topic `json:"topics"`
	TotalSentences int     `json:"totalSentences"`
	SlideCount     int     `json:"slideCount"`
}

// ClusterID identifies a cluster. Overflow marks the synthetic bucket that
// collects noise points, so it can never collide with a genuine label.
type ClusterID struct {
	Index    int
	Overflow bool
}

// Cluster maps an identifier to the sentence indices it contains.
// Indices are in original sentence order and refer into the segmented
// sentence list of the current run.
type Cluster struct {
	ID      ClusterID
	Indices []int
}

// RenderMeta carries deck-level fields shared by all renderers.
type RenderMeta struct {
	Title     string
	Generated time.Time
	Summary   string
}
