package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	productcmd "github.com/jevonx/farmers-market/internal/product/usecase/command"
	productquery "github.com/jevonx/farmers-market/internal/product/usecase/query"

	farmcmd "github.com/jevonx/farmers-market/internal/farm/usecase/command"
	farmquery "github.com/jevonx/farmers-market/internal/farm/usecase/query"

	"github.com/jevonx/farmers-market/pkg/logger"
	"github.com/jevonx/farmers-market/pkg/view"
)

const defaultPageName = "farmersMarket"

// maxFarmProducts caps the product preview on the single farm page.
const maxFarmProducts = 3

// Handler serves the server-rendered catalog pages. It delegates to the
// product and farm services and hands records to the view renderer; it never
// builds markup itself.
type Handler struct {
	createProduct *productcmd.CreateProductHandler
	updateProduct *productcmd.UpdateProductHandler
	getProduct    *productquery.GetProductHandler
	listProducts  *productquery.ListProductsHandler
	search        *productquery.SearchProductsHandler

	createFarm *farmcmd.CreateFarmHandler
	updateFarm *farmcmd.UpdateDescriptionHandler
	getFarm    *farmquery.GetFarmHandler
	listFarms  *farmquery.ListFarmsHandler

	renderer view.Renderer
}

// NewHandler creates the web handler.
func NewHandler(
	createProduct *productcmd.CreateProductHandler,
	updateProduct *productcmd.UpdateProductHandler,
	getProduct *productquery.GetProductHandler,
	listProducts *productquery.ListProductsHandler,
	search *productquery.SearchProductsHandler,
	createFarm *farmcmd.CreateFarmHandler,
	updateFarm *farmcmd.UpdateDescriptionHandler,
	getFarm *farmquery.GetFarmHandler,
	listFarms *farmquery.ListFarmsHandler,
	renderer view.Renderer,
) *Handler {
	return &Handler{
		createProduct: createProduct,
		updateProduct: updateProduct,
		getProduct:    getProduct,
		listProducts:  listProducts,
		search:        search,
		createFarm:    createFarm,
		updateFarm:    updateFarm,
		getFarm:       getFarm,
		listFarms:     listFarms,
		renderer:      renderer,
	}
}

// RegisterRoutes mounts the page routes and the catch-all 404.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.Use(RequestLogger)

	router.HandleFunc("/", h.Home).Methods("GET")
	router.HandleFunc("/products", h.Products).Methods("GET")
	router.HandleFunc("/product/new", h.NewProductForm).Methods("GET")
	router.HandleFunc("/product/new", h.AddProduct).Methods("POST")
	router.HandleFunc("/product/{id}", h.SingleProduct).Methods("GET")
	router.HandleFunc("/categories/{category}", h.PerCategory).Methods("GET")
	router.HandleFunc("/products/farm/{id}", h.PerFarm).Methods("GET")
	router.HandleFunc("/search", h.Search).Methods("POST")
	router.HandleFunc("/editProduct/{id}", h.EditProductForm).Methods("GET")
	router.HandleFunc("/editProduct/{id}", h.EditProduct).Methods("POST")

	router.HandleFunc("/farms", h.Farms).Methods("GET")
	router.HandleFunc("/farms/new", h.NewFarmForm).Methods("GET")
	router.HandleFunc("/farms/new", h.AddFarm).Methods("POST")
	router.HandleFunc("/farms/{id}", h.SingleFarm).Methods("GET")
	router.HandleFunc("/editFarm/{id}", h.EditFarmForm).Methods("GET")
	router.HandleFunc("/editFarm/{id}", h.EditFarm).Methods("POST")

	router.NotFoundHandler = RequestLogger(http.HandlerFunc(h.NotFound))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if err := h.renderer.Render(w, name, data); err != nil {
		logger.Error(r.Context()).Err(err).Str("view", name).Msg("Failed to render view")
		h.renderError(w, r, http.StatusInternalServerError, msgServer)
	}
}

// Home handles GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.listProducts.Handle(productquery.ListProductsQuery{})
	if err != nil {
		h.fail(w, r, err, msgServer)
		return
	}
	h.render(w, r, "home", map[string]any{
		"pageName": defaultPageName,
		"products": products,
	})
}

// Products handles GET /products, grouped per category.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.listProducts.Handle(productquery.ListProductsQuery{})
	if err != nil {
		h.fail(w, r, err, msgServer)
		return
	}
	grouped := productquery.GroupByCategory(products)
	h.render(w, r, "products", map[string]any{
		"pageName":      "Products",
		"fruitData":     grouped["fruit"],
		"vegetableData": grouped["vegetable"],
		"dairyData":     grouped["dairy"],
	})
}

// NewProductForm handles GET /product/new
func (h *Handler) NewProductForm(w http.ResponseWriter, r *http.Request) {
	farms, err := h.listFarms.Handle(farmquery.ListFarmsQuery{})
	if err != nil {
		h.fail(w, r, err, msgServer)
		return
	}
	h.render(w, r, "newProduct", map[string]any{
		"pageName": "New Product",
		"allFarms": farms,
	})
}

// AddProduct handles POST /product/new
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}

	price, err := optionalFloat(r.PostFormValue("price"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}
	size, err := optionalFloat(r.PostFormValue("size"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}
	qty, err := optionalInt(r.PostFormValue("qty"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}

	cmd := productcmd.CreateProductCommand{
		Name:     r.PostFormValue("name"),
		Price:    price,
		Unit:     r.PostFormValue("unit"),
		Category: r.PostFormValue("category"),
		FarmName: r.PostFormValue("farmName"),
	}
	if size != nil {
		cmd.Size = *size
	}
	if qty != nil {
		cmd.Qty = *qty
	}

	product, err := h.createProduct.Handle(r.Context(), cmd)
	if err != nil {
		h.fail(w, r, err, msgNoProduct)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/product/%d", product.ID), http.StatusSeeOther)
}

// SingleProduct handles GET /product/{id}
func (h *Handler) SingleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, msgNoProduct)
		return
	}

	product, err := h.getProduct.Handle(productquery.GetProductQuery{ID: id})
	if err != nil {
		h.fail(w, r, err, msgNoProduct)
		return
	}

	h.render(w, r, "singleProduct", map[string]any{
		"pageName": product.DisplayName(),
		"product":  product,
		"id":       product.ID,
	})
}

// PerCategory handles GET /categories/{category}
func (h *Handler) PerCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	products, err := h.listProducts.Handle(productquery.ListProductsQuery{Category: category})
	if err != nil {
		h.fail(w, r, err, msgNoCategory)
		return
	}

	h.render(w, r, "perCategory", map[string]any{
		"pageName": category,
		"category": category,
		"products": products,
	})
}

// PerFarm handles GET /products/farm/{id}
func (h *Handler) PerFarm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, msgNoFarm)
		return
	}

	farm, err := h.getFarm.Handle(farmquery.GetFarmQuery{ID: id})
	if err != nil {
		h.fail(w, r, err, msgNoFarm)
		return
	}

	products, err := h.listProducts.Handle(productquery.ListProductsQuery{FarmID: id})
	if err != nil {
		h.fail(w, r, err, msgServer)
		return
	}

	h.render(w, r, "perFarm", map[string]any{
		"pageName": farm.DisplayName(),
		"farm":     farm,
		"products": products,
	})
}

// Search handles POST /search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}

	result, err := h.search.Handle(productquery.SearchProductsQuery{Term: r.PostFormValue("searchBar")})
	if err != nil {
		h.fail(w, r, err, msgServer)
		return
	}

	h.render(w, r, "search", map[string]any{
		"pageName":        "Search: " + result.Term,
		"searchedProduct": result.Term,
		"products":        result.Products,
	})
}

// EditProductForm handles GET /editProduct/{id}
func (h *Handler) EditProductForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, msgNoEditMatch)
		return
	}

	product, err := h.getProduct.Handle(productquery.GetProductQuery{ID: id})
	if err != nil {
		h.fail(w, r, err, msgNoEditMatch)
		return
	}

	h.render(w, r, "editProduct", map[string]any{
		"pageName": "Edit | " + product.DisplayName(),
		"product":  product,
		"id":       product.ID,
	})
}

// EditProduct handles POST /editProduct/{id}. Empty form fields leave the
// stored values untouched; submitting neither field is a successful no-op.
func (h *Handler) EditProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, msgNoEditMatch)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}

	price, err := optionalFloat(r.PostFormValue("price"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}
	qty, err := optionalInt(r.PostFormValue("qty"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}

	product, err := h.updateProduct.Handle(productcmd.UpdateProductCommand{
		ID:    id,
		Price: price,
		Qty:   qty,
	})
	if err != nil {
		h.fail(w, r, err, msgNoEditMatch)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/product/%d", product.ID), http.StatusSeeOther)
}

// Farms handles GET /farms
func (h *Handler) Farms(w http.ResponseWriter, r *http.Request) {
	farms, err := h.listFarms.Handle(farmquery.ListFarmsQuery{})
	if err != nil {
		h.fail(w, r, err, msgServer)
		return
	}
	h.render(w, r, "farms", map[string]any{
		"pageName": "Farms",
		"allFarms": farms,
	})
}

// NewFarmForm handles GET /farms/new
func (h *Handler) NewFarmForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "newFarm", map[string]any{
		"pageName": "New farm",
	})
}

// AddFarm handles POST /farms/new
func (h *Handler) AddFarm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}

	farm, err := h.createFarm.Handle(farmcmd.CreateFarmCommand{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Description: r.PostFormValue("description"),
		City:        r.PostFormValue("city"),
		State:       r.PostFormValue("state"),
	})
	if err != nil {
		h.fail(w, r, err, msgNoFarm)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/farms/%d", farm.ID), http.StatusSeeOther)
}

// SingleFarm handles GET /farms/{id}, with a short preview of the farm's
// products.
func (h *Handler) SingleFarm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, msgNoFarm)
		return
	}

	farm, err := h.getFarm.Handle(farmquery.GetFarmQuery{ID: id})
	if err != nil {
		h.fail(w, r, err, msgNoFarm)
		return
	}

	products, err := h.listProducts.Handle(productquery.ListProductsQuery{FarmID: id})
	if err != nil {
		h.fail(w, r, err, msgServer)
		return
	}
	if len(products) > maxFarmProducts {
		products = products[:maxFarmProducts]
	}

	h.render(w, r, "singleFarm", map[string]any{
		"pageName": farm.DisplayName() + " farm",
		"farm":     farm,
		"products": products,
	})
}

// EditFarmForm handles GET /editFarm/{id}
func (h *Handler) EditFarmForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, msgNoEditMatch)
		return
	}

	farm, err := h.getFarm.Handle(farmquery.GetFarmQuery{ID: id})
	if err != nil {
		h.fail(w, r, err, msgNoEditMatch)
		return
	}

	h.render(w, r, "editFarm", map[string]any{
		"pageName": farm.DisplayName() + " farm edit",
		"farm":     farm,
	})
}

// EditFarm handles POST /editFarm/{id}. The submitted description is trimmed
// and overwrites the stored one unconditionally; an empty submission is a
// valid overwrite.
func (h *Handler) EditFarm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, msgNoEditMatch)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, msgBadInput)
		return
	}

	farm, err := h.updateFarm.Handle(farmcmd.UpdateDescriptionCommand{
		ID:          id,
		Description: r.PostFormValue("newDescription"),
	})
	if err != nil {
		h.fail(w, r, err, msgNoEditMatch)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/farms/%d", farm.ID), http.StatusSeeOther)
}

// NotFound is the catch-all error route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, msgNotFound)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func optionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
