package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostkeep/freezer-api/internal/application/storage"
	"github.com/frostkeep/freezer-api/internal/application/usecase"
	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/freshness"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
	apphttp "github.com/frostkeep/freezer-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory store with the same semantics as the PostgreSQL adapters:
// uniqueness enforced at write time, referential checks, cascade deletes.
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	freezers map[string]*entity.Freezer
	drawers  map[string]*entity.Drawer
	products map[string]*entity.Product
	entries  map[string]*entity.StorageEntry
}

func newMemDB() *memDB {
	return &memDB{
		freezers: map[string]*entity.Freezer{},
		drawers:  map[string]*entity.Drawer{},
		products: map[string]*entity.Product{},
		entries:  map[string]*entity.StorageEntry{},
	}
}

func (db *memDB) deleteEntriesOfDrawer(drawerID string) {
	for id, e := range db.entries {
		if e.DrawerID == drawerID {
			delete(db.entries, id)
		}
	}
}

type memFreezerRepo struct{ db *memDB }

func (r *memFreezerRepo) Create(f *entity.Freezer) error {
	for _, existing := range r.db.freezers {
		if existing.Name == f.Name {
			return domain.ErrDuplicateName
		}
	}
	cp := *f
	r.db.freezers[f.ID] = &cp
	return nil
}

func (r *memFreezerRepo) GetByID(id string) (*entity.Freezer, error) {
	f, ok := r.db.freezers[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *memFreezerRepo) List() ([]*entity.Freezer, error) {
	var list []*entity.Freezer
	for _, f := range r.db.freezers {
		cp := *f
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memFreezerRepo) Rename(id, name string) error {
	f, ok := r.db.freezers[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.db.freezers {
		if existing.ID != id && existing.Name == name {
			return domain.ErrDuplicateName
		}
	}
	f.Name = name
	return nil
}

func (r *memFreezerRepo) Delete(id string) error {
	if _, ok := r.db.freezers[id]; !ok {
		return domain.ErrNotFound
	}
	for drawerID, d := range r.db.drawers {
		if d.FreezerID == id {
			r.db.deleteEntriesOfDrawer(drawerID)
			delete(r.db.drawers, drawerID)
		}
	}
	delete(r.db.freezers, id)
	return nil
}

type memDrawerRepo struct{ db *memDB }

func (r *memDrawerRepo) Create(d *entity.Drawer) error {
	if _, ok := r.db.freezers[d.FreezerID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.db.drawers {
		if existing.FreezerID == d.FreezerID && existing.Name == d.Name {
			return domain.ErrDuplicateName
		}
	}
	cp := *d
	r.db.drawers[d.ID] = &cp
	return nil
}

func (r *memDrawerRepo) GetByID(id string) (*entity.Drawer, error) {
	d, ok := r.db.drawers[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDrawerRepo) ListByFreezer(freezerID string) ([]*entity.Drawer, error) {
	var list []*entity.Drawer
	for _, d := range r.db.drawers {
		if d.FreezerID == freezerID {
			cp := *d
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memDrawerRepo) List() ([]*entity.Drawer, error) {
	var list []*entity.Drawer
	for _, d := range r.db.drawers {
		cp := *d
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memDrawerRepo) Rename(id, name string) error {
	d, ok := r.db.drawers[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.db.drawers {
		if existing.ID != id && existing.FreezerID == d.FreezerID && existing.Name == name {
			return domain.ErrDuplicateName
		}
	}
	d.Name = name
	return nil
}

func (r *memDrawerRepo) Delete(id string) error {
	if _, ok := r.db.drawers[id]; !ok {
		return domain.ErrNotFound
	}
	r.db.deleteEntriesOfDrawer(id)
	delete(r.db.drawers, id)
	return nil
}

type memProductRepo struct{ db *memDB }

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.db.products {
		if existing.Name == p.Name {
			return domain.ErrDuplicateName
		}
	}
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.db.products {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memProductRepo) Rename(id, name string) error {
	p, ok := r.db.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.db.products {
		if existing.ID != id && existing.Name == name {
			return domain.ErrDuplicateName
		}
	}
	p.Name = name
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.db.products[id]; !ok {
		return domain.ErrNotFound
	}
	for entryID, e := range r.db.entries {
		if e.ProductID == id {
			delete(r.db.entries, entryID)
		}
	}
	delete(r.db.products, id)
	return nil
}

type memStorageRepo struct{ db *memDB }

func (r *memStorageRepo) Create(e *entity.StorageEntry) error {
	if _, ok := r.db.products[e.ProductID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.db.drawers[e.DrawerID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.db.entries[e.ID] = &cp
	return nil
}

func (r *memStorageRepo) GetByID(id string) (*entity.StorageEntry, error) {
	e, ok := r.db.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memStorageRepo) detail(e *entity.StorageEntry) *entity.StorageDetail {
	product := r.db.products[e.ProductID]
	drawer := r.db.drawers[e.DrawerID]
	freezer := r.db.freezers[drawer.FreezerID]
	return &entity.StorageDetail{
		StorageEntry:     *e,
		ProductName:      product.Name,
		ExpirationMonths: product.ExpirationMonths,
		DrawerName:       drawer.Name,
		FreezerID:        freezer.ID,
		FreezerName:      freezer.Name,
	}
}

func (r *memStorageRepo) GetDetailByID(id string) (*entity.StorageDetail, error) {
	e, ok := r.db.entries[id]
	if !ok {
		return nil, nil
	}
	return r.detail(e), nil
}

func (r *memStorageRepo) List(filter repository.StorageFilter) ([]*entity.StorageDetail, error) {
	var list []*entity.StorageDetail
	for _, e := range r.db.entries {
		d := r.detail(e)
		if filter.FreezerID != "" && d.FreezerID != filter.FreezerID {
			continue
		}
		if filter.DrawerID != "" && d.DrawerID != filter.DrawerID {
			continue
		}
		if filter.ProductID != "" && d.ProductID != filter.ProductID {
			continue
		}
		if filter.AvailableOnly && !d.Available {
			continue
		}
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		ka, kb := a.DateIn, b.DateIn
		if filter.Sort == repository.SortExpiry {
			ka = freshness.ExpiresOn(a.DateIn, a.ExpirationMonths)
			kb = freshness.ExpiresOn(b.DateIn, b.ExpirationMonths)
		}
		if !ka.Equal(kb) {
			return ka.Before(kb)
		}
		return a.ID < b.ID
	})
	return list, nil
}

func (r *memStorageRepo) CheckOut(id string, dateOut time.Time) (bool, error) {
	e, ok := r.db.entries[id]
	if !ok || !e.Available {
		return false, nil
	}
	e.Available = false
	e.DateOut = &dateOut
	return true, nil
}

func (r *memStorageRepo) AggregateByProduct(filter repository.StorageFilter) ([]*entity.ProductAggregate, error) {
	filter.AvailableOnly = true
	details, _ := r.List(filter)
	totals := map[string]*entity.ProductAggregate{}
	var order []string
	for _, d := range details {
		agg, ok := totals[d.ProductID]
		if !ok {
			agg = &entity.ProductAggregate{ProductID: d.ProductID, ProductName: d.ProductName}
			totals[d.ProductID] = agg
			order = append(order, d.ProductID)
		}
		agg.EntryCount++
		agg.TotalWeightGrams = agg.TotalWeightGrams.Add(d.WeightGrams)
	}
	sort.Strings(order)
	var list []*entity.ProductAggregate
	for _, id := range order {
		list = append(list, totals[id])
	}
	return list, nil
}

func (r *memStorageRepo) Delete(id string) error {
	if _, ok := r.db.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.entries, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp wires the full router over the in-memory store with a fixed
// reference date.
func buildTestApp(t *testing.T, now time.Time) (*fiber.App, *memDB) {
	t.Helper()
	db := newMemDB()
	storageUC := storage.NewUseCase(&memStorageRepo{db: db}, freshness.DefaultLookaheadDays).
		WithClock(func() time.Time { return now })

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:   "freezer-api-test",
		FreezerUC: usecase.NewFreezerUseCase(&memFreezerRepo{db: db}),
		DrawerUC:  usecase.NewDrawerUseCase(&memDrawerRepo{db: db}),
		ProductUC: usecase.NewProductUseCase(&memProductRepo{db: db}),
		StorageUC: storageUC,
	})
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "" {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func createOK(t *testing.T, app *fiber.App, path string, body any) map[string]any {
	t.Helper()
	resp, out := doRequest(t, app, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return out
}

func items(t *testing.T, decoded map[string]any) []any {
	t.Helper()
	raw, ok := decoded["items"]
	require.True(t, ok, "response has no items field: %v", decoded)
	if raw == nil {
		return nil
	}
	return raw.([]any)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestEndToEndStockAndCheckOut(t *testing.T) {
	now := time.Date(2023, time.November, 10, 0, 0, 0, 0, time.UTC)
	app, _ := buildTestApp(t, now)

	freezer := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	freezerID := freezer["id"].(string)

	drawer := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": freezerID})
	drawerID := drawer["id"].(string)

	product := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli", "expiration_months": 12})
	productID := product["id"].(string)

	entry := createOK(t, app, "/api/storage", fiber.Map{
		"product_id":   productID,
		"drawer_id":    drawerID,
		"weight_grams": 400,
		"date_in":      "2023-11-08",
	})
	entryID := entry["id"].(string)

	resp, list := doRequest(t, app, http.MethodGet, "/api/storage?freezerId="+freezerID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := items(t, list)
	require.Len(t, got, 1)
	first := got[0].(map[string]any)
	assert.Equal(t, entryID, first["id"])
	assert.Equal(t, "fresh", first["freshness_status"])
	assert.Equal(t, "2024-11-08", first["date_expires"])
	assert.Equal(t, "Broccoli", first["product_name"])
	assert.Equal(t, "Schuif 1", first["drawer_name"])
	assert.Equal(t, "Garage", first["freezer_name"])

	resp, checkedOut := doRequest(t, app, http.MethodPatch, "/api/storage/"+entryID+"/checkout",
		fiber.Map{"date_out": "2024-01-01"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, checkedOut["available"])
	assert.Equal(t, "2024-01-01", checkedOut["date_out"])

	resp, list = doRequest(t, app, http.MethodGet, "/api/storage?freezerId="+freezerID+"&availableOnly=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, items(t, list))
}

func TestDuplicateFreezerName(t *testing.T) {
	app, db := buildTestApp(t, time.Now())
	createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})

	resp, body := doRequest(t, app, http.MethodPost, "/api/freezers", fiber.Map{"name": "Garage"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_NAME", body["code"])
	// The store is unchanged.
	assert.Len(t, db.freezers, 1)
}

func TestDuplicateDrawerNameWithinFreezer(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())
	f1 := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	f2 := createOK(t, app, "/api/freezers", fiber.Map{"name": "Cellar"})
	createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f1["id"]})

	resp, body := doRequest(t, app, http.MethodPost, "/api/drawers",
		fiber.Map{"name": "Schuif 1", "freezer_id": f1["id"]})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_NAME", body["code"])

	// The same drawer name in another freezer is fine.
	resp, _ = doRequest(t, app, http.MethodPost, "/api/drawers",
		fiber.Map{"name": "Schuif 1", "freezer_id": f2["id"]})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateDrawerInMissingFreezer(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())

	resp, body := doRequest(t, app, http.MethodPost, "/api/drawers",
		fiber.Map{"name": "Schuif 1", "freezer_id": "no-such-freezer"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestCreateProductDefaultsAndValidation(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())

	product := createOK(t, app, "/api/products", fiber.Map{"name": "Peas"})
	assert.Equal(t, float64(6), product["expiration_months"])

	resp, body := doRequest(t, app, http.MethodPost, "/api/products",
		fiber.Map{"name": "Beans", "expiration_months": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	// An explicit zero is invalid input, not a request for the default.
	resp, body = doRequest(t, app, http.MethodPost, "/api/products",
		fiber.Map{"name": "Corn", "expiration_months": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestCreateStorageInvalidWeight(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	d := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f["id"]})
	p := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli"})

	resp, body := doRequest(t, app, http.MethodPost, "/api/storage", fiber.Map{
		"product_id":   p["id"],
		"drawer_id":    d["id"],
		"weight_grams": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestCreateStorageMissingReferences(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())

	resp, body := doRequest(t, app, http.MethodPost, "/api/storage", fiber.Map{
		"product_id":   "no-such-product",
		"drawer_id":    "no-such-drawer",
		"weight_grams": 100,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestCheckOutTwiceConflicts(t *testing.T) {
	now := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	app, _ := buildTestApp(t, now)
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	d := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f["id"]})
	p := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli"})
	entry := createOK(t, app, "/api/storage", fiber.Map{
		"product_id":   p["id"],
		"drawer_id":    d["id"],
		"weight_grams": 400,
		"date_in":      "2023-11-08",
	})
	path := "/api/storage/" + entry["id"].(string) + "/checkout"

	resp, _ := doRequest(t, app, http.MethodPatch, path, fiber.Map{"date_out": "2023-12-01"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPatch, path, fiber.Map{"date_out": "2023-12-02"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestCascadeDeleteDrawerRemovesStorage(t *testing.T) {
	app, db := buildTestApp(t, time.Now())
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	d := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f["id"]})
	p := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli"})
	createOK(t, app, "/api/storage", fiber.Map{
		"product_id":   p["id"],
		"drawer_id":    d["id"],
		"weight_grams": 400,
	})
	drawerID := d["id"].(string)

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/drawers/"+drawerID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, db.entries)

	resp, list := doRequest(t, app, http.MethodGet, "/api/storage?drawerId="+drawerID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, items(t, list))
}

func TestCascadeDeleteFreezerRemovesDrawersAndStorage(t *testing.T) {
	app, db := buildTestApp(t, time.Now())
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	d := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f["id"]})
	p := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli"})
	createOK(t, app, "/api/storage", fiber.Map{
		"product_id":   p["id"],
		"drawer_id":    d["id"],
		"weight_grams": 400,
	})

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/freezers/"+f["id"].(string), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, db.drawers)
	assert.Empty(t, db.entries)
	// Products are reference data, not owned by freezers.
	assert.Len(t, db.products, 1)
}

func TestCascadeDeleteProductRemovesStorage(t *testing.T) {
	app, db := buildTestApp(t, time.Now())
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	d := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f["id"]})
	p := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli"})
	createOK(t, app, "/api/storage", fiber.Map{
		"product_id":   p["id"],
		"drawer_id":    d["id"],
		"weight_grams": 400,
	})

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/products/"+p["id"].(string), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, db.entries)
	// The drawer and freezer survive the cascade.
	assert.Len(t, db.drawers, 1)
	assert.Len(t, db.freezers, 1)

	resp, list := doRequest(t, app, http.MethodGet, "/api/storage?drawerId="+d["id"].(string), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, items(t, list))
}

func TestAggregateEndpoint(t *testing.T) {
	now := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	app, _ := buildTestApp(t, now)
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	d := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f["id"]})
	p := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli"})
	createOK(t, app, "/api/storage", fiber.Map{
		"product_id": p["id"], "drawer_id": d["id"], "weight_grams": 400, "date_in": "2023-11-08",
	})
	entry := createOK(t, app, "/api/storage", fiber.Map{
		"product_id": p["id"], "drawer_id": d["id"], "weight_grams": 300, "date_in": "2023-11-09",
	})

	resp, agg := doRequest(t, app, http.MethodGet, "/api/storage/aggregate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := items(t, agg)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "Broccoli", row["product_name"])
	assert.Equal(t, float64(2), row["entry_count"])
	assert.Equal(t, "700", row["total_weight_grams"])

	// Checking one entry out shrinks the total.
	resp, _ = doRequest(t, app, http.MethodPatch,
		"/api/storage/"+entry["id"].(string)+"/checkout", fiber.Map{"date_out": "2023-12-01"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, agg = doRequest(t, app, http.MethodGet, "/api/storage/aggregate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows = items(t, agg)
	require.Len(t, rows, 1)
	row = rows[0].(map[string]any)
	assert.Equal(t, float64(1), row["entry_count"])
	assert.Equal(t, "400", row["total_weight_grams"])
}

func TestListOrderingOldestFirst(t *testing.T) {
	now := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	app, _ := buildTestApp(t, now)
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	d := createOK(t, app, "/api/drawers", fiber.Map{"name": "Schuif 1", "freezer_id": f["id"]})
	p := createOK(t, app, "/api/products", fiber.Map{"name": "Broccoli"})
	createOK(t, app, "/api/storage", fiber.Map{
		"product_id": p["id"], "drawer_id": d["id"], "weight_grams": 400, "date_in": "2023-11-08",
	})
	createOK(t, app, "/api/storage", fiber.Map{
		"product_id": p["id"], "drawer_id": d["id"], "weight_grams": 250, "date_in": "2023-08-10",
	})

	resp, list := doRequest(t, app, http.MethodGet, "/api/storage?drawerId="+d["id"].(string), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := items(t, list)
	require.Len(t, got, 2)
	assert.Equal(t, "2023-08-10", got[0].(map[string]any)["date_in"])
	assert.Equal(t, "2023-11-08", got[1].(map[string]any)["date_in"])
}

func TestBadFilterParameters(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())

	resp, body := doRequest(t, app, http.MethodGet, "/api/storage?availableOnly=banana", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	resp, body = doRequest(t, app, http.MethodGet, "/api/storage?status=stale", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestGetMissingEntities(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())

	for _, path := range []string{
		"/api/freezers/nope",
		"/api/drawers/nope",
		"/api/products/nope",
		"/api/storage/nope",
	} {
		resp, body := doRequest(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, "NOT_FOUND", body["code"], path)
	}
}

func TestRenameFreezer(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())
	f := createOK(t, app, "/api/freezers", fiber.Map{"name": "Garage"})
	createOK(t, app, "/api/freezers", fiber.Map{"name": "Cellar"})

	resp, renamed := doRequest(t, app, http.MethodPut,
		"/api/freezers/"+f["id"].(string), fiber.Map{"name": "Basement"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Basement", renamed["name"])

	// Renaming onto an existing name conflicts.
	resp, body := doRequest(t, app, http.MethodPut,
		"/api/freezers/"+f["id"].(string), fiber.Map{"name": "Cellar"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_NAME", body["code"])
}

func TestRootEndpoints(t *testing.T) {
	app, _ := buildTestApp(t, time.Now())

	resp, _ := doRequest(t, app, http.MethodGet, "/api/info", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, version := doRequest(t, app, http.MethodGet, "/api/version", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, version["version"])
}
