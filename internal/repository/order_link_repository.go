package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const orderLinksType = "OnlineOrderLinks"

// OrderLinkRepo persists OnlineOrderLinks items.  These carry no
// timestamps; the table's existing rows never had them.
type OrderLinkRepo struct{ Store *store.Store }

func NewOrderLinkRepo(s *store.Store) *OrderLinkRepo { return &OrderLinkRepo{Store: s} }

func decodeOrderLink(item store.Item) model.OnlineOrderLink {
	return model.OnlineOrderLink{
		ID:       store.GetS(item, store.SortAttr),
		Platform: store.GetS(item, "platform"),
		URL:      store.GetS(item, "url"),
		Logo:     store.GetS(item, "logo"),
		BranchID: store.GetS(item, "branch_id"),
	}
}

func (r *OrderLinkRepo) Create(ctx context.Context, l model.OnlineOrderLink) (model.OnlineOrderLink, error) {
	l.ID = uuid.NewString()
	item := store.Item{
		store.PartitionAttr: store.S(orderLinksType),
		store.SortAttr:      store.S(l.ID),
		"platform":          store.S(l.Platform),
		"url":               store.S(l.URL),
		"logo":              store.S(l.Logo),
		"branch_id":         store.S(l.BranchID),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.OnlineOrderLink{}, err
	}
	return l, nil
}

func (r *OrderLinkRepo) GetByID(ctx context.Context, id string) (model.OnlineOrderLink, error) {
	item, err := r.Store.Get(ctx, orderLinksType, id)
	if err != nil {
		return model.OnlineOrderLink{}, err
	}
	if item == nil {
		return model.OnlineOrderLink{}, ErrNotFound
	}
	return decodeOrderLink(item), nil
}

func (r *OrderLinkRepo) List(ctx context.Context) ([]model.OnlineOrderLink, error) {
	items, err := r.Store.ScanType(ctx, orderLinksType)
	if err != nil {
		return nil, err
	}
	out := make([]model.OnlineOrderLink, 0, len(items))
	for _, it := range items {
		out = append(out, decodeOrderLink(it))
	}
	return out, nil
}

func (r *OrderLinkRepo) Update(ctx context.Context, id string, upd model.OnlineOrderLinkUpdate) (model.OnlineOrderLink, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.OnlineOrderLink{}, err
	}
	changes := store.Item{}
	if upd.Platform != nil {
		changes["platform"] = store.S(*upd.Platform)
	}
	if upd.URL != nil {
		changes["url"] = store.S(*upd.URL)
	}
	if upd.Logo != nil {
		changes["logo"] = store.S(*upd.Logo)
	}
	if upd.BranchID != nil {
		changes["branch_id"] = store.S(*upd.BranchID)
	}
	if err := r.Store.Update(ctx, orderLinksType, id, changes); err != nil {
		return model.OnlineOrderLink{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *OrderLinkRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, orderLinksType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, orderLinksType, id)
}
