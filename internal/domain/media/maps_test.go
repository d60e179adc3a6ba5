package media

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func rec(rt ResourceType, rid uuid.UUID, tag Tag, pos int, url string) *Record {
	return &Record{
		ID:           uuid.New(),
		ResourceType: rt,
		ResourceID:   rid,
		Tag:          tag,
		Position:     pos,
		URL:          url,
	}
}

func TestBuildMapsGalleryOrdering(t *testing.T) {
	post := uuid.New()
	// Store may hand rows back batched by descriptor, not by position.
	records := []*Record{
		rec(ResourcePost, post, TagGallery, 2, "https://cdn.example.com/g2"),
		rec(ResourcePost, post, TagGallery, 0, "https://cdn.example.com/g0"),
		rec(ResourcePost, post, TagGallery, 1, "https://cdn.example.com/g1"),
	}

	maps, gated := BuildMaps(records)
	if len(gated) != 0 {
		t.Fatalf("expected no gated records, got %d", len(gated))
	}
	seq := maps.Galleries[post]
	if len(seq) != 3 {
		t.Fatalf("expected 3 gallery entries, got %d", len(seq))
	}
	for i, p := range seq {
		if p.Position != i {
			t.Fatalf("gallery not sorted: index %d has position %d", i, p.Position)
		}
	}
}

func TestBuildMapsVariantSelection(t *testing.T) {
	post := uuid.New()
	withVariant := rec(ResourcePost, post, TagFeaturedImage, 0, "https://cdn.example.com/orig")
	withVariant.Variants = datatypes.JSONMap{"public": "https://cdn.example.com/public"}

	other := uuid.New()
	plain := rec(ResourcePost, other, TagFeaturedImage, 0, "https://cdn.example.com/plain")

	maps, _ := BuildMaps([]*Record{withVariant, plain})

	if got := maps.FeaturedImages[post].URL; got != "https://cdn.example.com/public" {
		t.Fatalf("expected public variant url, got %q", got)
	}
	if got := maps.FeaturedImages[other].URL; got != "https://cdn.example.com/plain" {
		t.Fatalf("expected canonical url, got %q", got)
	}
}

func TestBuildMapsTypeGating(t *testing.T) {
	biz := uuid.New()
	usr := uuid.New()

	records := []*Record{
		// profile_pic on a business is bad upstream data
		rec(ResourceBusiness, biz, TagProfilePic, 0, "https://cdn.example.com/bad"),
		rec(ResourceUserProfile, usr, TagProfilePic, 0, "https://cdn.example.com/ok"),
		// logo on a post likewise
		rec(ResourcePost, biz, TagLogo, 0, "https://cdn.example.com/badlogo"),
	}

	maps, gated := BuildMaps(records)

	if _, ok := maps.ProfilePics[biz]; ok {
		t.Fatalf("profile_pic for non-user_profile resource leaked into ProfilePics")
	}
	if _, ok := maps.ProfilePics[usr]; !ok {
		t.Fatalf("expected profile pic for user profile")
	}
	if len(maps.BusinessLogos) != 0 {
		t.Fatalf("logo for non-business resource leaked into BusinessLogos")
	}
	if len(gated) != 2 {
		t.Fatalf("expected 2 gated records, got %d", len(gated))
	}
	// gated records still show up in the tag-agnostic index
	if len(maps.ByResource[biz]) != 2 {
		t.Fatalf("expected gated records in ByResource, got %d", len(maps.ByResource[biz]))
	}
}

func TestBuildMapsKeepFirstForSingleValued(t *testing.T) {
	news := uuid.New()
	first := rec(ResourceNews, news, TagFeaturedImage, 0, "https://cdn.example.com/first")
	second := rec(ResourceNews, news, TagFeaturedImage, 1, "https://cdn.example.com/second")

	maps, _ := BuildMaps([]*Record{first, second})

	if got := maps.FeaturedImages[news].URL; got != "https://cdn.example.com/first" {
		t.Fatalf("expected first record by position to win, got %q", got)
	}
	if len(maps.ByResource[news]) != 2 {
		t.Fatalf("both records should remain in ByResource")
	}
}

func TestBuildMapsNoLeakage(t *testing.T) {
	p1 := uuid.New()
	u1 := uuid.New()
	records := []*Record{
		rec(ResourcePost, p1, TagFeaturedImage, 0, "https://cdn.example.com/p1"),
		rec(ResourceUserProfile, u1, TagProfilePic, 0, "https://cdn.example.com/u1"),
		rec(ResourcePost, p1, TagGallery, 0, "https://cdn.example.com/p1g"),
	}
	requested := map[uuid.UUID]struct{}{p1: {}, u1: {}}

	maps, _ := BuildMaps(records)

	for rid := range maps.ByResource {
		if _, ok := requested[rid]; !ok {
			t.Fatalf("ByResource leaked resource id %s", rid)
		}
	}
	for rid := range maps.Galleries {
		if _, ok := requested[rid]; !ok {
			t.Fatalf("Galleries leaked resource id %s", rid)
		}
	}
}

func TestBuildMapsDeterministic(t *testing.T) {
	post := uuid.New()
	thumb := "https://cdn.example.com/t"
	a := rec(ResourcePost, post, TagGallery, 1, "https://cdn.example.com/a")
	a.ThumbnailURL = &thumb
	b := rec(ResourcePost, post, TagGallery, 0, "https://cdn.example.com/b")

	first, _ := BuildMaps([]*Record{a, b})
	second, _ := BuildMaps([]*Record{a, b})

	fs := first.Galleries[post]
	ss := second.Galleries[post]
	if len(fs) != len(ss) {
		t.Fatalf("expected identical gallery lengths")
	}
	for i := range fs {
		if fs[i] != ss[i] {
			t.Fatalf("expected identical maps across runs at index %d", i)
		}
	}
}

func TestBuildMapsBannerAndAttachmentGoToSingleMedia(t *testing.T) {
	usr := uuid.New()
	cmt := uuid.New()
	records := []*Record{
		rec(ResourceUserProfile, usr, TagBanner, 0, "https://cdn.example.com/banner"),
		rec(ResourceComment, cmt, TagAttachment, 0, "https://cdn.example.com/att"),
	}

	maps, gated := BuildMaps(records)
	if len(gated) != 0 {
		t.Fatalf("expected no gated records, got %d", len(gated))
	}
	if _, ok := maps.SingleMedia[usr]; !ok {
		t.Fatalf("banner should land in SingleMedia")
	}
	if _, ok := maps.SingleMedia[cmt]; !ok {
		t.Fatalf("attachment should land in SingleMedia")
	}
}

func TestParseRejectsUnknownValues(t *testing.T) {
	if _, err := ParseResourceType("spaceship"); err == nil {
		t.Fatalf("expected error for unknown resource type")
	}
	if _, err := ParseTag("hologram"); err == nil {
		t.Fatalf("expected error for unknown tag")
	}
	if _, err := ParseResourceType("business"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDescriptorDedupedIDs(t *testing.T) {
	id := uuid.New()
	d := ResourceDescriptor{Type: ResourcePost, IDs: []uuid.UUID{id, id, uuid.Nil, id}}
	deduped := d.DedupedIDs()
	if len(deduped) != 1 || deduped[0] != id {
		t.Fatalf("expected single deduped id, got %v", deduped)
	}
}
