package handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
)

// UploadImage 处理头像与打卡照片上传。
// 图片落在持久化状态切片里而不是磁盘上，所以先按最长边压到上限、
// 再编码为 data URI 返回，前端直接把返回值当作 avatar/image 字段的取值。
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "未找到上传的图片")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "只允许上传图片文件")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取上传文件失败")
		return
	}
	defer src.Close()

	decoded, _, err := image.Decode(src)
	if err != nil {
		respondError(c, http.StatusBadRequest, "无法解析图片内容")
		return
	}

	scaled := scaleToMaxEdge(decoded, a.maxImageEdge)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		respondError(c, http.StatusInternalServerError, "压缩图片失败")
		return
	}

	dataURI := fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(buf.Bytes()))
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"dataUri": dataURI}})
}

// scaleToMaxEdge 把图片等比缩放到最长边不超过 maxEdge；已在范围内时原样返回。
func scaleToMaxEdge(src image.Image, maxEdge int) image.Image {
	if maxEdge <= 0 {
		return src
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxEdge && height <= maxEdge {
		return src
	}

	targetWidth := maxEdge
	targetHeight := maxEdge
	if width > height {
		targetHeight = height * maxEdge / width
	} else {
		targetWidth = width * maxEdge / height
	}
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
