package artcatalog

// Artwork — подтверждённая каталогом запись с метаданными для кэширования.
type Artwork struct {
	ExternalID string // Идентификатор записи в каталоге
	Title      string // Название экспоната
	ImageURL   string // Ссылка на изображение (IIIF)
}

// Ответ каталога Art Institute of Chicago на запрос одной записи.
type artworkResponse struct {
	Data struct {
		ID      int64  `json:"id"`
		Title   string `json:"title"`
		ImageID string `json:"image_id"`
	} `json:"data"`
}
