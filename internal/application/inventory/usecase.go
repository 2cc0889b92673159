// Package inventory contiene la fachada de inventario: única fuente de
// verdad y único mutador de sucursales, categorías, productos, plantillas y
// movimientos. Cada operación valida, muta, persiste el estado completo y
// publica un evento, en ese orden.
package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/hvaldez/inventario-sucursales/internal/application/dto"
	"github.com/hvaldez/inventario-sucursales/internal/domain"
	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
	"github.com/hvaldez/inventario-sucursales/internal/domain/search"
	"github.com/hvaldez/inventario-sucursales/pkg/logger"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// persistedState es el documento completo serializado bajo StorageKey.
// Sin campo de versión: un blob corrupto o de otro esquema se descarta y se
// reemplaza por el dataset por defecto (fail-open).
type persistedState struct {
	Stores     []entity.Store             `json:"stores"`
	Categories []entity.Category          `json:"categories"`
	Products   []entity.Product           `json:"products"`
	Templates  []entity.ProductTemplate   `json:"templates,omitempty"`
	Movements  []entity.InventoryMovement `json:"movements,omitempty"`
}

// UseCase fachada de inventario. Un mutex serializa a los escritores: cada
// operación mutante es atómica incluida su escritura de persistencia.
type UseCase struct {
	mu    sync.Mutex
	gw    Gateway
	bus   EventBus.Bus
	log   *logger.Logger
	ready bool
	st    persistedState
}

// NewUseCase construye la fachada. El bus puede ser nil (nadie escucha).
func NewUseCase(gw Gateway, bus EventBus.Bus, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, bus: bus, log: log}
}

// Load carga el estado persistido. Idempotente: si ya está listo no hace
// nada. Blob ausente o corrupto cae al dataset por defecto y lo persiste;
// ningún error de deserialización llega al caller.
func (uc *UseCase) Load() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.ready {
		return nil
	}

	raw, err := uc.gw.Get(StorageKey)
	if err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Msg("lectura del estado persistido falló, usando datos por defecto")
	}

	loaded := false
	if err == nil && raw != nil {
		var st persistedState
		if uerr := jsonCodec.Unmarshal(raw, &st); uerr == nil {
			uc.st = st
			loaded = true
		} else if uc.log != nil {
			uc.log.Warn().Err(uerr).Msg("estado persistido corrupto, usando datos por defecto")
		}
	}

	if !loaded {
		uc.st = defaultState()
		if perr := uc.persist(); perr != nil {
			return perr
		}
	}

	uc.ready = true
	uc.publish(TopicStateLoaded, len(uc.st.Stores))
	return nil
}

// Ready indica si Load ya pobló el estado.
func (uc *UseCase) Ready() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ready
}

// ResetToDefaults sobrescribe sin condiciones el estado en memoria y el blob
// persistido con el dataset por defecto. Pensado para aislamiento de pruebas.
func (uc *UseCase) ResetToDefaults() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.st = defaultState()
	if err := uc.persist(); err != nil {
		return err
	}
	uc.ready = true
	uc.publish(TopicStateLoaded, len(uc.st.Stores))
	return nil
}

// persist serializa el estado completo bajo StorageKey. El caller ya debe
// tener el mutex. Un error aquí se propaga dejando el estado en memoria
// mutado pero sin persistir (riesgo aceptado de un solo dispositivo).
func (uc *UseCase) persist() error {
	raw, err := jsonCodec.Marshal(&uc.st)
	if err != nil {
		return fmt.Errorf("serializar estado: %w", err)
	}
	return uc.gw.Set(StorageKey, raw)
}

func (uc *UseCase) publish(topic string, args ...interface{}) {
	if uc.bus != nil {
		uc.bus.Publish(topic, args...)
	}
}

// ── Sucursales ────────────────────────────────────────────────────────────────

// AddStore da de alta una sucursal. No exige unicidad de nombre.
func (uc *UseCase) AddStore(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := time.Now()
	store := entity.Store{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	uc.st.Stores = append(uc.st.Stores, store)
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.publish(TopicStoreChanged, "alta", store.ID)
	return toStoreResponse(&store), nil
}

// UpdateStore merge parcial sobre la sucursal. (nil, nil) si no existe.
func (uc *UseCase) UpdateStore(id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	store := uc.findStore(id)
	if store == nil {
		return nil, nil
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Location != nil {
		store.Location = *in.Location
	}
	if in.Description != nil {
		store.Description = *in.Description
	}
	if in.ImageURL != nil {
		store.ImageURL = *in.ImageURL
	}
	store.UpdatedAt = time.Now()
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.publish(TopicStoreChanged, "cambio", store.ID)
	return toStoreResponse(store), nil
}

// RemoveStore elimina la sucursal y, en cascada, sus categorías, productos
// y los movimientos de esos productos.
func (uc *UseCase) RemoveStore(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findStore(id) == nil {
		return domain.ErrNotFound
	}
	removed := make(map[string]bool)
	for _, p := range uc.st.Products {
		if p.StoreID == id {
			removed[p.ID] = true
		}
	}
	uc.st.Stores = filterStores(uc.st.Stores, func(s entity.Store) bool { return s.ID != id })
	uc.st.Categories = filterCategories(uc.st.Categories, func(c entity.Category) bool { return c.StoreID != id })
	uc.st.Products = filterProducts(uc.st.Products, func(p entity.Product) bool { return p.StoreID != id })
	uc.st.Movements = filterMovements(uc.st.Movements, func(m entity.InventoryMovement) bool { return !removed[m.ProductID] })
	if err := uc.persist(); err != nil {
		return err
	}
	uc.publish(TopicStoreChanged, "baja", id)
	return nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

// AddCategory crea una categoría. Falla con ErrDuplicateCategory si ya hay
// una con el mismo nombre normalizado en la misma sucursal; la verificación
// ocurre antes de mutar o persistir.
func (uc *UseCase) AddCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.StoreID == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: store_id y name son requeridos", domain.ErrInvalidInput)
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findStore(in.StoreID) == nil {
		return nil, fmt.Errorf("%w: la sucursal no existe", domain.ErrInvalidInput)
	}
	normalized := search.Normalize(in.Name)
	for _, c := range uc.st.Categories {
		if c.StoreID == in.StoreID && search.Normalize(c.Name) == normalized {
			return nil, domain.ErrDuplicateCategory
		}
	}

	category := entity.Category{
		ID:          uuid.New().String(),
		StoreID:     in.StoreID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	uc.st.Categories = append(uc.st.Categories, category)
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.publish(TopicCategoryChanged, "alta", category.ID)
	return toCategoryResponse(&category), nil
}

// RemoveCategory elimina la categoría y, en cascada, sus productos y los
// movimientos de esos productos.
func (uc *UseCase) RemoveCategory(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	found := false
	for _, c := range uc.st.Categories {
		if c.ID == id {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	removed := make(map[string]bool)
	for _, p := range uc.st.Products {
		if p.CategoryID == id {
			removed[p.ID] = true
		}
	}
	uc.st.Categories = filterCategories(uc.st.Categories, func(c entity.Category) bool { return c.ID != id })
	uc.st.Products = filterProducts(uc.st.Products, func(p entity.Product) bool { return p.CategoryID != id })
	uc.st.Movements = filterMovements(uc.st.Movements, func(m entity.InventoryMovement) bool { return !removed[m.ProductID] })
	if err := uc.persist(); err != nil {
		return err
	}
	uc.publish(TopicCategoryChanged, "baja", id)
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// AddProduct crea un producto. Falla con ErrInvalidInput si la sucursal no
// existe o la categoría no pertenece a esa sucursal. Los campos de oferta se
// normalizan: sin oferta no hay precio de oferta; activar oferta exige
// precio. Si referencia una plantilla, prellena nombre y precio ausentes y
// registra la referencia de sucursal.
func (uc *UseCase) AddProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Stock < 0 {
		return nil, domain.ErrNegativeStock
	}
	if in.HasOffer && in.OfferPrice == nil {
		return nil, domain.ErrOfferWithoutPrice
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findStore(in.StoreID) == nil {
		return nil, fmt.Errorf("%w: la sucursal no existe", domain.ErrInvalidInput)
	}
	categoryOK := false
	for _, c := range uc.st.Categories {
		if c.ID == in.CategoryID && c.StoreID == in.StoreID {
			categoryOK = true
			break
		}
	}
	if !categoryOK {
		return nil, fmt.Errorf("%w: la categoría no existe en esa sucursal", domain.ErrInvalidInput)
	}

	now := time.Now()
	product := entity.Product{
		ID:          uuid.New().String(),
		StoreID:     in.StoreID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Unit:        in.Unit,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		TemplateID:  in.TemplateID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.HasOffer {
		product.Offer = &entity.Offer{Price: *in.OfferPrice}
	}
	if in.Discount != nil {
		product.Discount = &entity.DiscountInfo{
			MonthsNoInterest: in.Discount.MonthsNoInterest,
			CashOnly:         in.Discount.CashOnly,
			ExpiresAt:        in.Discount.ExpiresAt,
		}
	}
	if in.Barcodes != nil {
		product.Barcodes = &entity.Barcodes{UPC: in.Barcodes.UPC, Box: in.Barcodes.Box}
	}

	// Prellenado desde plantilla y registro de la referencia por sucursal.
	if in.TemplateID != "" {
		for i := range uc.st.Templates {
			tpl := &uc.st.Templates[i]
			if tpl.ID != in.TemplateID {
				continue
			}
			if product.Name == "" {
				product.Name = tpl.Name
			}
			if product.Price.IsZero() {
				product.Price = tpl.BasePrice
			}
			if product.Barcodes == nil && tpl.Barcodes != nil {
				bc := *tpl.Barcodes
				product.Barcodes = &bc
			}
			if product.Barcodes != nil && product.Barcodes.UPC != "" {
				tpl.References = append(tpl.References, entity.StoreReference{
					StoreID:      in.StoreID,
					Code:         product.Barcodes.UPC,
					RegisteredAt: now,
				})
			}
			break
		}
	}
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}

	uc.st.Products = append(uc.st.Products, product)
	if product.Stock > 0 {
		uc.st.Movements = append(uc.st.Movements, entity.InventoryMovement{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			StoreID:        product.StoreID,
			Kind:           entity.MovementKindInitial,
			Reason:         entity.MovementReasonInitialLoad,
			Quantity:       product.Stock,
			PreviousStock:  0,
			ResultingStock: product.Stock,
			CreatedAt:      now,
		})
	}
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.publish(TopicProductChanged, "alta", product.ID)
	return toProductResponse(&product), nil
}

// UpdateProduct merge parcial sobre el producto. Devuelve (nil, nil) si no
// existe (falla silenciosa, no error). Rederiva la consistencia de la
// oferta y registra un snapshot en el historial cuando cambia el precio de
// lista o el de oferta.
func (uc *UseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrNegativeStock
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	product := uc.findProduct(id)
	if product == nil {
		return nil, nil
	}

	// Validación de oferta antes de mutar: activar sin precio (ni en el
	// request ni vigente) es inválido.
	if in.HasOffer != nil && *in.HasOffer && in.OfferPrice == nil && product.Offer == nil {
		return nil, domain.ErrOfferWithoutPrice
	}

	now := time.Now()
	oldPrice := product.Price
	oldOffer := product.Offer

	if in.Name != nil && *in.Name != product.Name {
		product.ChangeLog = append(product.ChangeLog, entity.ChangeEntry{
			Field: "name", From: product.Name, To: *in.Name, At: now,
		})
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil && *in.Stock != product.Stock {
		product.ChangeLog = append(product.ChangeLog, entity.ChangeEntry{
			Field: "stock",
			From:  fmt.Sprintf("%d", product.Stock),
			To:    fmt.Sprintf("%d", *in.Stock),
			At:    now,
		})
		product.Stock = *in.Stock
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Discount != nil {
		product.Discount = &entity.DiscountInfo{
			MonthsNoInterest: in.Discount.MonthsNoInterest,
			CashOnly:         in.Discount.CashOnly,
			ExpiresAt:        in.Discount.ExpiresAt,
		}
	}
	if in.Barcodes != nil {
		product.Barcodes = &entity.Barcodes{UPC: in.Barcodes.UPC, Box: in.Barcodes.Box}
	}

	// Rederivar oferta: has_offer=false explícito limpia el precio de
	// oferta; has_offer=true toma el precio del request o conserva el
	// vigente; offer_price solo actualiza una oferta ya activa.
	switch {
	case in.HasOffer != nil && !*in.HasOffer:
		product.Offer = nil
	case in.HasOffer != nil && *in.HasOffer:
		if in.OfferPrice != nil {
			product.Offer = &entity.Offer{Price: *in.OfferPrice}
		}
	case in.OfferPrice != nil && product.Offer != nil:
		product.Offer = &entity.Offer{Price: *in.OfferPrice}
	}

	if priceChanged(oldPrice, oldOffer, product.Price, product.Offer) {
		snap := entity.PriceSnapshot{Price: product.Price, RecordedAt: now}
		if product.Offer != nil {
			op := product.Offer.Price
			snap.OfferPrice = &op
		}
		product.PriceHistory = append(product.PriceHistory, snap)
		prev := oldPrice
		product.PreviousPrice = &prev
		at := now
		product.PriceUpdatedAt = &at
		product.ChangeLog = append(product.ChangeLog, entity.ChangeEntry{
			Field: "price",
			From:  oldPrice.String(),
			To:    product.EffectivePrice().String(),
			At:    now,
		})
	}

	product.UpdatedAt = now
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.publish(TopicProductChanged, "cambio", product.ID)
	return toProductResponse(product), nil
}

// SetProductStock fija el stock absoluto. Stock negativo es inválido.
func (uc *UseCase) SetProductStock(id string, stock int) (*dto.ProductResponse, error) {
	if stock < 0 {
		return nil, domain.ErrNegativeStock
	}
	return uc.UpdateProduct(id, dto.UpdateProductRequest{Stock: &stock})
}

// ToggleOffer activa o desactiva la oferta. Activar sin precio es inválido.
func (uc *UseCase) ToggleOffer(id string, hasOffer bool, offerPrice *decimal.Decimal) (*dto.ProductResponse, error) {
	if hasOffer && offerPrice == nil {
		return nil, domain.ErrOfferWithoutPrice
	}
	return uc.UpdateProduct(id, dto.UpdateProductRequest{HasOffer: &hasOffer, OfferPrice: offerPrice})
}

// RemoveProduct elimina el producto y sus movimientos.
func (uc *UseCase) RemoveProduct(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findProduct(id) == nil {
		return domain.ErrNotFound
	}
	uc.st.Products = filterProducts(uc.st.Products, func(p entity.Product) bool { return p.ID != id })
	uc.st.Movements = filterMovements(uc.st.Movements, func(m entity.InventoryMovement) bool { return m.ProductID != id })
	if err := uc.persist(); err != nil {
		return err
	}
	uc.publish(TopicProductChanged, "baja", id)
	return nil
}

// AdjustStock aplica un delta de stock con motivo y nota, registrando el
// movimiento con stock anterior y resultante. Rechaza (no recorta) un stock
// resultante negativo.
func (uc *UseCase) AdjustStock(id string, in dto.AdjustStockRequest) (*dto.MovementResponse, error) {
	if in.Delta == 0 {
		return nil, fmt.Errorf("%w: delta no puede ser cero", domain.ErrInvalidInput)
	}
	if !entity.ValidMovementReason(in.Reason) {
		return nil, fmt.Errorf("%w: motivo desconocido %q", domain.ErrInvalidInput, in.Reason)
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	product := uc.findProduct(id)
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resulting := product.Stock + in.Delta
	if resulting < 0 {
		return nil, domain.ErrNegativeStock
	}

	kind := entity.MovementKindIncrease
	quantity := in.Delta
	if in.Delta < 0 {
		kind = entity.MovementKindDecrease
		quantity = -in.Delta
	}
	now := time.Now()
	mov := entity.InventoryMovement{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		StoreID:        product.StoreID,
		Kind:           kind,
		Reason:         in.Reason,
		Quantity:       quantity,
		PreviousStock:  product.Stock,
		ResultingStock: resulting,
		Note:           in.Note,
		CreatedAt:      now,
	}
	product.Stock = resulting
	product.UpdatedAt = now
	uc.st.Movements = append(uc.st.Movements, mov)
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.publish(TopicMovementRecorded, mov.Kind, mov.ProductID)
	return toMovementResponse(&mov), nil
}

// ── Lado de lectura ───────────────────────────────────────────────────────────

// Stores lista todas las sucursales.
func (uc *UseCase) Stores() *dto.StoreListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]dto.StoreResponse, 0, len(uc.st.Stores))
	for i := range uc.st.Stores {
		items = append(items, *toStoreResponse(&uc.st.Stores[i]))
	}
	return &dto.StoreListResponse{Items: items}
}

// StoreByID devuelve una sucursal o nil si no existe.
func (uc *UseCase) StoreByID(id string) *dto.StoreResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if s := uc.findStore(id); s != nil {
		return toStoreResponse(s)
	}
	return nil
}

// Categories lista las categorías; con storeID vacío devuelve todas.
func (uc *UseCase) Categories(storeID string) *dto.CategoryListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]dto.CategoryResponse, 0, len(uc.st.Categories))
	for i := range uc.st.Categories {
		c := &uc.st.Categories[i]
		if storeID != "" && c.StoreID != storeID {
			continue
		}
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}
}

// Products lista productos filtrando opcionalmente por sucursal y categoría.
func (uc *UseCase) Products(storeID, categoryID string) *dto.ProductListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]dto.ProductResponse, 0, len(uc.st.Products))
	for i := range uc.st.Products {
		p := &uc.st.Products[i]
		if storeID != "" && p.StoreID != storeID {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}
}

// ProductByID devuelve un producto o nil si no existe.
func (uc *UseCase) ProductByID(id string) *dto.ProductResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if p := uc.findProduct(id); p != nil {
		return toProductResponse(p)
	}
	return nil
}

// Movements lista movimientos; con productID vacío devuelve todos.
func (uc *UseCase) Movements(productID string) *dto.MovementListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]dto.MovementResponse, 0, len(uc.st.Movements))
	for i := range uc.st.Movements {
		m := &uc.st.Movements[i]
		if productID != "" && m.ProductID != productID {
			continue
		}
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items}
}

// ── Snapshots para búsqueda, métricas y reportes ──────────────────────────────
// Copias de solo lectura: las utilidades puras nunca alcanzan el estado vivo.

// SnapshotStores devuelve una copia de las sucursales.
func (uc *UseCase) SnapshotStores() []entity.Store {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Store, len(uc.st.Stores))
	copy(out, uc.st.Stores)
	return out
}

// SnapshotCategories devuelve una copia de las categorías.
func (uc *UseCase) SnapshotCategories() []entity.Category {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Category, len(uc.st.Categories))
	copy(out, uc.st.Categories)
	return out
}

// SnapshotProducts devuelve una copia de los productos.
func (uc *UseCase) SnapshotProducts() []entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Product, len(uc.st.Products))
	copy(out, uc.st.Products)
	return out
}

// TemplateIndex devuelve las plantillas indexadas por id.
func (uc *UseCase) TemplateIndex() map[string]entity.ProductTemplate {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := make(map[string]entity.ProductTemplate, len(uc.st.Templates))
	for _, t := range uc.st.Templates {
		idx[t.ID] = t
	}
	return idx
}

// Templates lista las plantillas de producto.
func (uc *UseCase) Templates() []dto.TemplateResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]dto.TemplateResponse, 0, len(uc.st.Templates))
	for _, t := range uc.st.Templates {
		items = append(items, dto.TemplateResponse{ID: t.ID, SKU: t.SKU, Name: t.Name, Aliases: t.Aliases})
	}
	return items
}

// ── Internos ──────────────────────────────────────────────────────────────────

func (uc *UseCase) findStore(id string) *entity.Store {
	for i := range uc.st.Stores {
		if uc.st.Stores[i].ID == id {
			return &uc.st.Stores[i]
		}
	}
	return nil
}

func (uc *UseCase) findProduct(id string) *entity.Product {
	for i := range uc.st.Products {
		if uc.st.Products[i].ID == id {
			return &uc.st.Products[i]
		}
	}
	return nil
}

func priceChanged(oldPrice decimal.Decimal, oldOffer *entity.Offer, newPrice decimal.Decimal, newOffer *entity.Offer) bool {
	if !oldPrice.Equal(newPrice) {
		return true
	}
	switch {
	case oldOffer == nil && newOffer == nil:
		return false
	case oldOffer == nil || newOffer == nil:
		return true
	default:
		return !oldOffer.Price.Equal(newOffer.Price)
	}
}

func filterStores(in []entity.Store, keep func(entity.Store) bool) []entity.Store {
	out := in[:0]
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func filterCategories(in []entity.Category, keep func(entity.Category) bool) []entity.Category {
	out := in[:0]
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func filterProducts(in []entity.Product, keep func(entity.Product) bool) []entity.Product {
	out := in[:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func filterMovements(in []entity.InventoryMovement, keep func(entity.InventoryMovement) bool) []entity.InventoryMovement {
	out := in[:0]
	for _, m := range in {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
