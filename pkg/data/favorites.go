package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
)

const favoritesFileName = ".recipe_finder_favorites.json"

// Favorites is the local bookmark store: a single JSON object file mapping
// decimal recipe-id strings to whatever fields were stored at favorite time.
// The file is read once at open and rewritten in full on every mutation.
// Writes are not atomic; a torn file is recovered as empty on the next open.
// Mutations can arrive from UI command goroutines while the event loop reads
// star state, so the map is mutex-guarded.
type Favorites struct {
	mu      sync.Mutex
	path    string
	entries map[string]map[string]any
}

// OpenFavorites opens the store at its fixed path in the user's home
// directory.
func OpenFavorites() *Favorites {
	homeDir, _ := os.UserHomeDir()
	return OpenFavoritesFile(filepath.Join(homeDir, favoritesFileName))
}

// OpenFavoritesFile opens the store backed by the given file. A missing or
// unparseable file yields an empty store, never an error.
func OpenFavoritesFile(path string) *Favorites {
	f := &Favorites{path: path, entries: map[string]map[string]any{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		return f
	}
	if err := json.Unmarshal(raw, &f.entries); err != nil {
		f.entries = map[string]map[string]any{}
	}
	return f
}

// save rewrites the whole file; callers must hold the mutex.
func (f *Favorites) save() error {
	raw, err := json.Marshal(f.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0644)
}

// Add stores fields under the recipe id and persists immediately.
func (f *Favorites) Add(id int, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[strconv.Itoa(id)] = fields
	return f.save()
}

// Remove drops the recipe id and persists immediately. Removing an id that
// was never stored still rewrites the file and returns nil.
func (f *Favorites) Remove(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, strconv.Itoa(id))
	return f.save()
}

// IsFavorite checks membership in memory only; it never re-reads disk.
func (f *Favorites) IsFavorite(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[strconv.Itoa(id)]
	return ok
}

func (f *Favorites) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// FavoriteEntry is one stored favorite with its parsed id.
type FavoriteEntry struct {
	ID     int
	Fields map[string]any
}

// Record rebuilds a Recipe from the loosely typed stored fields, tolerating
// both in-memory ([]string) and JSON round-tripped ([]any) ingredient lists.
func (e FavoriteEntry) Record() Recipe {
	r := Recipe{ID: e.ID, Title: "No Title"}
	if title, ok := e.Fields["title"].(string); ok && title != "" {
		r.Title = title
	}
	r.UsedIngredients = stringSlice(e.Fields["usedIngredients"])
	r.MissedIngredients = stringSlice(e.Fields["missedIngredients"])
	return r
}

func stringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Entries returns the stored favorites sorted by id. The file itself has no
// ordering, but listings need a stable one.
func (f *Favorites) Entries() []FavoriteEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FavoriteEntry, 0, len(f.entries))
	for key, fields := range f.entries {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out = append(out, FavoriteEntry{ID: id, Fields: fields})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
