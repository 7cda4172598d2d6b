package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/domain/service"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxImageBytes caps a single uploaded product image.
const maxImageBytes = 5 << 20

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List returns a filtered page of the catalog.
func (h *ProductHandler) List(c echo.Context) error {
	var input usecase.ListProductsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListProducts(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// Get fetches a product by slug.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Create stores a new product. The request is multipart/form-data with a
// "data" part carrying the product JSON and up to six "images" file parts.
func (h *ProductHandler) Create(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input usecase.CreateProductInput
	if err := bindMultipartPayload(c, &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	uploads, err := readImageUploads(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	input.Images = uploads

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), principal.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update applies a partial product update; new images replace the old set.
func (h *ProductHandler) Update(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input usecase.UpdateProductInput
	if err := bindMultipartPayload(c, &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	uploads, err := readImageUploads(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	input.Images = uploads

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a product and its images.
func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// bindMultipartPayload decodes the product fields either from a plain JSON
// body or from the "data" part of a multipart form.
func bindMultipartPayload(c echo.Context, target any) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return c.Bind(target)
	}

	payload := c.FormValue("data")
	if payload == "" {
		return errors.New("missing data part")
	}

	return errors.WithStack(json.Unmarshal([]byte(payload), target))
}

// readImageUploads reads the "images" file parts of a multipart form. A JSON
// request simply carries no images.
func readImageUploads(c echo.Context) ([]service.ImageUpload, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("invalid multipart form")
	}

	files := form.File["images"]
	uploads := make([]service.ImageUpload, 0, len(files))
	for _, file := range files {
		upload, err := readImageUpload(file)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

func readImageUpload(file *multipart.FileHeader) (service.ImageUpload, error) {
	if file.Size > maxImageBytes {
		return service.ImageUpload{}, errors.Errorf("image %s exceeds the size limit", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return service.ImageUpload{}, errors.New("failed to read image upload")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil {
		return service.ImageUpload{}, errors.New("failed to read image upload")
	}
	if len(data) > maxImageBytes {
		return service.ImageUpload{}, errors.Errorf("image %s exceeds the size limit", file.Filename)
	}

	return service.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
