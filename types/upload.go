package types

// 图片上传目录分类
const (
	ImageCategoryAvatar      = "avatar"
	ImageCategoryRecipeCover = "recipe/cover"
	ImageCategoryRecipeStep  = "recipe/step"
	ImageCategoryPost        = "post"
)

type UploadResponse struct {
	Url string `json:"url"`
}
