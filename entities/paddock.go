package entities

import "time"

// Paddock is a fenced grazing unit. JSON names follow the paddock API
// consumed by the map page.
type Paddock struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"column:nombre;size:120;not null;index" json:"nombre"`
	Hectares    float64 `gorm:"column:hectareas" json:"hectareas"`
	PastureType string  `gorm:"column:tipo_pasto;size:60" json:"tipo_pasto"`
	CattleStage string  `gorm:"column:etapa_ganado;size:60" json:"etapa_ganado"` // cria|levante|ceba
	Description string  `gorm:"column:descripcion;type:text" json:"descripcion"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Paddock) TableName() string { return "potreros" }
