package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

type Handler struct {
	Uploader services.ImageUploader
}

func NewHandler(uploader services.ImageUploader) *Handler {
	return &Handler{Uploader: uploader}
}

// GetOSSToken godoc
// @Summary Get OSS STS Token
// @Description Get STS token for uploading files to Alibaba Cloud OSS
// @Tags common
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=services.STSCredentials}
// @Router /common/upload/token [get]
func (h *Handler) GetOSSToken(c *gin.Context) {
	token, err := services.GetOSSTSToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to get OSS token: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OSS token retrieved successfully", token))
}

type UploadResponse struct {
	URL string `json:"url"`
}

// UploadImage godoc
// @Summary Upload an image
// @Description Upload an image file to object storage and return its public URL
// @Tags common
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Image file"
// @Success 200 {object} utils.Response{data=UploadResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /common/upload [post]
func (h *Handler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Failed to read file"))
		return
	}
	defer file.Close()

	url, err := h.Uploader.UploadImage(file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to upload file: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("File uploaded successfully", UploadResponse{URL: url}))
}
