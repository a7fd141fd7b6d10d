package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"gallery/internal/client/met"
	"gallery/internal/models"
	"gallery/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// writeLog records mutation order so tests can assert happens-before
// relationships between cache and link writes.
type stubRepo struct {
	mu          sync.Mutex
	collections map[uint64]models.Collection
	links       []models.CollectionArtwork
	cache       map[string]models.ArtworkCache
	users       map[string]models.User
	favorites   []models.Favorite
	comments    []models.Comment
	writeLog    []string
	nextLinkID  uint64
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		collections: map[uint64]models.Collection{},
		cache:       map[string]models.ArtworkCache{},
		users:       map[string]models.User{},
	}
}

func (s *stubRepo) addCollection(item models.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[item.ID] = item
}

func (s *stubRepo) CreateCollection(ctx context.Context, item *models.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		item.ID = uint64(len(s.collections) + 1)
	}
	s.collections[item.ID] = *item
	return nil
}

func (s *stubRepo) GetCollectionByID(ctx context.Context, id uint64) (*models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.collections[id]
	if !ok {
		return nil, nil
	}
	out := item
	return &out, nil
}

func (s *stubRepo) ListCollections(ctx context.Context, params repository.ListCollectionsParams) ([]models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []models.Collection
	for _, item := range s.collections {
		if params.Published != nil && item.IsPublished != *params.Published {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if params.Desc {
			return items[i].ID > items[j].ID
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *stubRepo) ListCollectionsMissingCover(ctx context.Context, limit int) ([]models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []models.Collection
	for _, item := range s.collections {
		if item.CoverImageURL == nil || *item.CoverImageURL == "" {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *stubRepo) UpdateCollection(ctx context.Context, id uint64, updates map[string]any) error {
	return nil
}

func (s *stubRepo) SetCollectionPublished(ctx context.Context, id uint64, published bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.collections[id]
	if !ok {
		return nil
	}
	item.IsPublished = published
	s.collections[id] = item
	return nil
}

func (s *stubRepo) UpdateCollectionCover(ctx context.Context, id uint64, coverURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.collections[id]
	if !ok {
		return nil
	}
	item.CoverImageURL = &coverURL
	s.collections[id] = item
	s.writeLog = append(s.writeLog, "cover:"+coverURL)
	return nil
}

func (s *stubRepo) DeleteCollection(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, id)
	return nil
}

func (s *stubRepo) InsertLink(ctx context.Context, item *models.CollectionArtwork) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, link := range s.links {
		if link.CollectionID == item.CollectionID && link.ExternalID == item.ExternalID {
			return false, nil
		}
	}
	s.nextLinkID++
	item.ID = s.nextLinkID
	item.CreatedAt = time.Now().UTC()
	s.links = append(s.links, *item)
	s.writeLog = append(s.writeLog, "link:"+item.ExternalID)
	return true, nil
}

func (s *stubRepo) DeleteLink(ctx context.Context, collectionID uint64, externalID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, link := range s.links {
		if link.CollectionID == collectionID && link.ExternalID == externalID {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// sortedLinks applies the ordering invariant: sort_order ascending, nulls
// last, ties broken by insertion id.
func (s *stubRepo) sortedLinks(collectionID uint64) []models.CollectionArtwork {
	var items []models.CollectionArtwork
	for _, link := range s.links {
		if link.CollectionID == collectionID {
			items = append(items, link)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.SortOrder == nil && b.SortOrder == nil:
			return a.ID < b.ID
		case a.SortOrder == nil:
			return false
		case b.SortOrder == nil:
			return true
		case *a.SortOrder != *b.SortOrder:
			return *a.SortOrder < *b.SortOrder
		default:
			return a.ID < b.ID
		}
	})
	return items
}

func (s *stubRepo) ListLinksByCollectionID(ctx context.Context, collectionID uint64) ([]models.CollectionArtwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLinks(collectionID), nil
}

func (s *stubRepo) FirstLinkByCollectionID(ctx context.Context, collectionID uint64) (*models.CollectionArtwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.sortedLinks(collectionID)
	if len(items) == 0 {
		return nil, nil
	}
	out := items[0]
	return &out, nil
}

func (s *stubRepo) GetArtworkCache(ctx context.Context, externalID string) (*models.ArtworkCache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cache[externalID]
	if !ok {
		return nil, nil
	}
	out := item
	return &out, nil
}

func (s *stubRepo) UpsertArtworkCache(ctx context.Context, item *models.ArtworkCache) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache[item.ExternalID]; ok {
		return nil
	}
	s.cache[item.ExternalID] = *item
	s.writeLog = append(s.writeLog, "cache:"+item.ExternalID)
	return nil
}

func (s *stubRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	out := item
	return &out, nil
}

func (s *stubRepo) CreateUser(ctx context.Context, item *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[item.Username]; ok {
		return nil
	}
	item.ID = uint64(len(s.users) + 1)
	s.users[item.Username] = *item
	return nil
}

func (s *stubRepo) ListFavoritesByUserID(ctx context.Context, userID uint64) ([]models.Favorite, error) {
	return s.favorites, nil
}

func (s *stubRepo) InsertFavorite(ctx context.Context, item *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.favorites {
		if fav.UserID == item.UserID && fav.ExternalID == item.ExternalID {
			return nil
		}
	}
	s.favorites = append(s.favorites, *item)
	return nil
}

func (s *stubRepo) DeleteFavorite(ctx context.Context, userID uint64, externalID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, fav := range s.favorites {
		if fav.UserID == userID && fav.ExternalID == externalID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) ListCommentsByArtwork(ctx context.Context, userID uint64, externalID string) ([]models.Comment, error) {
	return s.comments, nil
}

func (s *stubRepo) InsertComment(ctx context.Context, item *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, *item)
	return nil
}

// fakeCatalog is an instrumented CatalogClient. It counts in-flight calls to
// verify the concurrency bound and lets tests script per-identifier outcomes.
type fakeCatalog struct {
	mu          sync.Mutex
	objects     map[string]*met.Object
	errs        map[string]error
	delay       time.Duration
	calls       int
	inFlight    int
	maxInFlight int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		objects: map[string]*met.Object{},
		errs:    map[string]error{},
	}
}

func (f *fakeCatalog) addObject(id, title, artist, image string) {
	f.objects[id] = &met.Object{
		ObjectID:          "1",
		Title:             title,
		ArtistDisplayName: artist,
		PrimaryImageSmall: image,
	}
}

func (f *fakeCatalog) GetObject(ctx context.Context, externalID string) (*met.Object, []byte, error) {
	f.mu.Lock()
	f.calls++
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	f.mu.Lock()
	f.inFlight--
	obj, ok := f.objects[externalID]
	err := f.errs[externalID]
	f.mu.Unlock()

	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, met.ErrObjectNotFound
	}
	return obj, []byte(`{"objectID":1}`), nil
}

func (f *fakeCatalog) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
