package model

// Topic 认证考纲中的细分主题，domain 为其所属大类
// swagger:model Topic
type Topic struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Domain      string `gorm:"size:128;index;not null" json:"domain"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
}

func (Topic) TableName() string {
	return "topics"
}
