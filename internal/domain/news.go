package domain

import "time"

// News is one article as the rest of the application sees it. ID is assigned
// by the local store on first insert; 0 means the item has not been persisted
// yet. Items fetched from the remote API arrive with the remote id already
// set and keep it as their primary key.
type News struct {
	ID          int64
	Title       string
	Abstract    string
	PublishDate time.Time
	Category    string
	Author      string
	Source      string
	URL         string
	Images      []NewsImage
}

// NewsImage is a media asset owned by exactly one News item. It has no
// identity of its own and is deleted together with its parent.
type NewsImage struct {
	Caption   string
	Copyright string
	URL       string
}

// Equal compares two items field by field. Image order is display order and
// does not affect equality.
func (n News) Equal(other News) bool {
	if n.ID != other.ID ||
		n.Title != other.Title ||
		n.Abstract != other.Abstract ||
		!n.PublishDate.Equal(other.PublishDate) ||
		n.Category != other.Category ||
		n.Author != other.Author ||
		n.Source != other.Source ||
		n.URL != other.URL {
		return false
	}
	if len(n.Images) != len(other.Images) {
		return false
	}
	remaining := make(map[NewsImage]int, len(n.Images))
	for _, img := range n.Images {
		remaining[img]++
	}
	for _, img := range other.Images {
		if remaining[img] == 0 {
			return false
		}
		remaining[img]--
	}
	return true
}

// EqualLists reports whether two news lists hold equal items in the same order.
func EqualLists(a, b []News) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
