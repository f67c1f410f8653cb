package snapshot

import (
	"errors"
	"fmt"

	"forumcfg/internal/models"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

var ErrInconsistent = errors.New("inconsistent snapshot")

// Report summarizes a snapshot. Problems make it unfit for adaptation.
type Report struct {
	Categories int
	Threads    int
	Posts      int
	MaxDepth   int
	Problems   []string
}

func (r *Report) Err() error {
	if len(r.Problems) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Problems))
	for _, p := range r.Problems {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInconsistent, p))
	}
	return errors.Join(errs...)
}

func (r *Report) problem(format string, args ...interface{}) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// Inspect checks ids and cross references of data. Pair ids are
// authoritative; a record id that disagrees with its pair is a problem.
func Inspect(data *models.ForumData) *Report {
	r := &Report{
		Categories: len(data.Categories),
		Threads:    len(data.Threads),
		Posts:      len(data.Posts),
	}

	categories := index(r, "category", data.Categories, func(c *models.LegacyCategory) uint64 { return c.ID.Uint64() })
	threads := index(r, "thread", data.Threads, func(t *models.LegacyThread) uint64 { return t.ID.Uint64() })
	index(r, "post", data.Posts, func(p *models.LegacyPost) uint64 { return p.ID.Uint64() })

	for _, e := range data.Threads {
		if id := e.Record.CategoryID.Uint64(); !categories.Contains(id) {
			r.problem("thread %d: category %d does not exist", e.ID, id)
		}
	}
	for _, e := range data.Posts {
		if id := e.Record.ThreadID.Uint64(); !threads.Contains(id) {
			r.problem("post %d: thread %d does not exist", e.ID, id)
		}
	}

	parents := make(map[uint64]uint64, len(data.Categories))
	for _, e := range data.Categories {
		pos := e.Record.PositionInParentCategory
		if pos == nil {
			continue
		}
		parent := pos.ParentID.Uint64()
		if !categories.Contains(parent) {
			r.problem("category %d: parent %d does not exist", e.ID, parent)
			continue
		}
		if _, seen := parents[e.ID]; !seen {
			parents[e.ID] = parent
		}
	}
	r.MaxDepth = depths(r, data.Categories, parents)

	return r
}

func index[T any](r *Report, kind string, entries []models.Entry[T], recordID func(*T) uint64) *roaring64.Bitmap {
	ids := roaring64.New()
	for i := range entries {
		e := &entries[i]
		if !ids.CheckedAdd(e.ID) {
			r.problem("duplicate %s id %d", kind, e.ID)
		}
		if rid := recordID(&e.Record); rid != 0 && rid != e.ID {
			r.problem("%s %d: record carries id %d", kind, e.ID, rid)
		}
	}
	return ids
}

// depths walks each category up to its root, memoizing depths along the way.
// Root categories have depth 1.
func depths(r *Report, categories []models.Entry[models.LegacyCategory], parents map[uint64]uint64) int {
	depth := make(map[uint64]int, len(categories))
	deepest := 0

	for _, e := range categories {
		var path []uint64
		onPath := roaring64.New()
		base := 0

		cur := e.ID
		for {
			if d, ok := depth[cur]; ok {
				base = d
				break
			}
			if onPath.Contains(cur) {
				cycle := roaring64.New()
				for i := len(path) - 1; i >= 0; i-- {
					cycle.Add(path[i])
					if path[i] == cur {
						break
					}
				}
				r.problem("categories %v form a parent cycle", cycle.ToArray())
				break
			}
			onPath.Add(cur)
			path = append(path, cur)

			parent, ok := parents[cur]
			if !ok {
				break
			}
			cur = parent
		}

		for i := len(path) - 1; i >= 0; i-- {
			base++
			depth[path[i]] = base
		}
		if base > deepest {
			deepest = base
		}
	}
	return deepest
}
