package collections

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Experience is a single work-history entry. Entries are authored once and
// read-only at render time.
type Experience struct {
	ID          uuid.UUID
	Title       string
	Logo        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Weight      int
	FilePath    string
	Body        []byte
	BodyHTML    []byte
}

// Ongoing reports whether the entry should render the ongoing indicator
// instead of an end date.
func (e *Experience) Ongoing() bool {
	return e != nil && e.Current && e.EndDate == nil
}

// Post is a blog entry in the digital garden.
type Post struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	PublishedAt time.Time
	Tags        []string
	Draft       bool
	FilePath    string
	Body        []byte
	BodyHTML    []byte
}

// Project is a portfolio entry pointing at an external artifact.
type Project struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	URL         string
	Repo        string
	Featured    bool
	Techs       []string
	Weight      int
	FilePath    string
	Body        []byte
	BodyHTML    []byte
}

// Library is the immutable result of a content load. Slices are sorted:
// posts by publication date (newest first), experiences by start date
// (newest first), projects by weight then title.
type Library struct {
	Experiences []*Experience
	Posts       []*Post
	Projects    []*Project
	LoadedAt    time.Time
}

// FeaturedProjects returns the projects flagged for the featured listing,
// preserving library order.
func (l *Library) FeaturedProjects() []*Project {
	if l == nil {
		return nil
	}
	var featured []*Project
	for _, project := range l.Projects {
		if project != nil && project.Featured {
			featured = append(featured, project)
		}
	}
	return featured
}

// PostBySlug returns the post for slug and whether it exists.
func (l *Library) PostBySlug(slug string) (*Post, bool) {
	if l == nil {
		return nil, false
	}
	slug = strings.TrimSpace(slug)
	for _, post := range l.Posts {
		if post != nil && post.Slug == slug {
			return post, true
		}
	}
	return nil, false
}

// ProjectBySlug returns the project for slug and whether it exists.
func (l *Library) ProjectBySlug(slug string) (*Project, bool) {
	if l == nil {
		return nil, false
	}
	slug = strings.TrimSpace(slug)
	for _, project := range l.Projects {
		if project != nil && project.Slug == slug {
			return project, true
		}
	}
	return nil, false
}

// PostsByTag returns the posts carrying tag, preserving library ordering.
func (l *Library) PostsByTag(tag string) []*Post {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil
	}
	return l.postsGroupedByTag()[tag]
}

// postsGroupedByTag groups posts per tag. Tag keys keep their authored form.
func (l *Library) postsGroupedByTag() map[string][]*Post {
	if l == nil {
		return map[string][]*Post{}
	}
	grouped := map[string][]*Post{}
	for _, post := range l.Posts {
		if post == nil {
			continue
		}
		for _, t := range post.Tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			grouped[t] = append(grouped[t], post)
		}
	}
	return grouped
}

// Tags returns every tag used by at least one post, sorted alphabetically.
func (l *Library) Tags() []string {
	grouped := l.postsGroupedByTag()
	tags := make([]string, 0, len(grouped))
	for tag := range grouped {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func sortLibrary(lib *Library) {
	sort.SliceStable(lib.Experiences, func(i, j int) bool {
		left, right := lib.Experiences[i], lib.Experiences[j]
		if left.StartDate.Equal(right.StartDate) {
			return left.Title < right.Title
		}
		return left.StartDate.After(right.StartDate)
	})
	sort.SliceStable(lib.Posts, func(i, j int) bool {
		left, right := lib.Posts[i], lib.Posts[j]
		if left.PublishedAt.Equal(right.PublishedAt) {
			return left.Slug < right.Slug
		}
		return left.PublishedAt.After(right.PublishedAt)
	})
	sort.SliceStable(lib.Projects, func(i, j int) bool {
		left, right := lib.Projects[i], lib.Projects[j]
		if left.Weight != right.Weight {
			return left.Weight < right.Weight
		}
		return left.Title < right.Title
	})
}
