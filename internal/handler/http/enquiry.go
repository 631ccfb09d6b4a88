package http

import (
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/domain/enquiry"
	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	enquiryService "github.com/gajkesari/backoffice-go/internal/service/enquiry"
)

// maxUploadSize caps relayed enquiry files at 20 MiB.
const maxUploadSize = 20 << 20

type EnquiryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
}

type enquiryHandlerImpl struct {
	enquiryService *enquiryService.Service
}

func NewEnquiryHandler(s *enquiryService.Service) EnquiryHandler {
	return &enquiryHandlerImpl{enquiryService: s}
}

func (h *enquiryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := enquiry.ListRequest{
		StoreName:  query.Get("storeName"),
		Taluka:     query.Get("taluka"),
		SheetName:  query.Get("sheetName"),
		FileName:   query.Get("fileName"),
		StartMonth: query.Get("startMonth"),
		EndMonth:   query.Get("endMonth"),
	}

	result, err := h.enquiryService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *enquiryHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A 'file' form field is required", nil)
		return
	}
	defer file.Close()

	result, err := h.enquiryService.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Upload accepted", result)
}
