package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
)

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.Name == p.Name {
			return domain.ErrDuplicateName
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.byID {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Rename(id, name string) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Name = name
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func intPtr(n int) *int { return &n }

func TestCreateProductShelfLife(t *testing.T) {
	tests := []struct {
		name    string
		months  *int
		want    int
		wantErr bool
	}{
		{name: "omitted defaults to six months", months: nil, want: 6},
		{name: "explicit value kept", months: intPtr(12), want: 12},
		{name: "explicit zero rejected", months: intPtr(0), wantErr: true},
		{name: "negative rejected", months: intPtr(-1), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewProductUseCase(newFakeProductRepo())
			out, err := uc.Create(dto.CreateProductRequest{Name: "Peas", ExpirationMonths: tc.months})
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.ExpirationMonths)
		})
	}
}
