package media

import (
	"sort"

	"github.com/google/uuid"
)

// Processed is the presentation-ready projection of a stored record.
type Processed struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Tag          Tag       `json:"tag"`
	Position     int       `json:"position"`
}

// Maps bundles every derived index produced by one resolution, all keyed by
// resource id. Single-valued maps hold at most one entry per resource;
// Galleries holds position-ordered sequences.
type Maps struct {
	ByResource     map[uuid.UUID][]Processed `json:"by_resource"`
	FeaturedImages map[uuid.UUID]Processed   `json:"featured_images"`
	ProfilePics    map[uuid.UUID]Processed   `json:"profile_pics"`
	BusinessLogos  map[uuid.UUID]Processed   `json:"business_logos"`
	SingleMedia    map[uuid.UUID]Processed   `json:"single_media"`
	Galleries      map[uuid.UUID][]Processed `json:"galleries"`
}

func NewMaps() *Maps {
	return &Maps{
		ByResource:     map[uuid.UUID][]Processed{},
		FeaturedImages: map[uuid.UUID]Processed{},
		ProfilePics:    map[uuid.UUID]Processed{},
		BusinessLogos:  map[uuid.UUID]Processed{},
		SingleMedia:    map[uuid.UUID]Processed{},
		Galleries:      map[uuid.UUID][]Processed{},
	}
}

// BuildMaps runs the classification pass over one fetch snapshot and returns
// the finished Maps plus any records excluded from their specialized map by
// type gating (a profile_pic not owned by a user profile, a logo not owned by
// a business). Gated records still appear in ByResource; the caller decides
// how to report them.
//
// Records are expected in position-ascending order; single-valued buckets keep
// the first record seen for a resource and ignore the rest. Galleries get a
// terminal position sort so the result is deterministic regardless of how the
// store ordered rows across descriptors.
func BuildMaps(records []*Record) (*Maps, []*Record) {
	maps := NewMaps()
	var gated []*Record

	for _, rec := range records {
		if rec == nil {
			continue
		}
		p := Processed{
			ID:           rec.ID,
			URL:          rec.DisplayURL(),
			ThumbnailURL: rec.ThumbnailURL,
			ResourceID:   rec.ResourceID,
			Tag:          rec.Tag,
			Position:     rec.Position,
		}
		maps.ByResource[rec.ResourceID] = append(maps.ByResource[rec.ResourceID], p)

		switch rec.Tag {
		case TagGallery:
			maps.Galleries[rec.ResourceID] = append(maps.Galleries[rec.ResourceID], p)
		case TagFeaturedImage:
			putFirst(maps.FeaturedImages, p)
		case TagProfilePic:
			if rec.ResourceType != ResourceUserProfile {
				gated = append(gated, rec)
				continue
			}
			putFirst(maps.ProfilePics, p)
		case TagLogo:
			if rec.ResourceType != ResourceBusiness {
				gated = append(gated, rec)
				continue
			}
			putFirst(maps.BusinessLogos, p)
		default:
			// banner, attachment, and anything the enum gains later
			putFirst(maps.SingleMedia, p)
		}
	}

	for rid := range maps.Galleries {
		seq := maps.Galleries[rid]
		sort.SliceStable(seq, func(i, j int) bool { return seq[i].Position < seq[j].Position })
		maps.Galleries[rid] = seq
	}

	return maps, gated
}

func putFirst(m map[uuid.UUID]Processed, p Processed) {
	if _, ok := m[p.ResourceID]; ok {
		return
	}
	m[p.ResourceID] = p
}
