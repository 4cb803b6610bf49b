package models

import (
	"time"
)

// Request payload shapes. Pointer fields distinguish a missing value from a
// zero value so that "required" only rejects absent keys.

// CreatePlantillaRequest is the payload accepted when registering a plantilla
type CreatePlantillaRequest struct {
	ID                *int        `mapstructure:"id" validate:"required"`
	Nombre            *string     `mapstructure:"nombre" validate:"required"`
	Descripcion       *string     `mapstructure:"descripcion" validate:"required"`
	Secciones         *RefRequest `mapstructure:"secciones" validate:"required"`
	Minutas           *RefRequest `mapstructure:"minutas" validate:"required"`
	Titulos           *RefRequest `mapstructure:"titulos" validate:"required"`
	Imagenes          *RefRequest `mapstructure:"imagenes" validate:"required"`
	EnlaceDoc         *string     `mapstructure:"enlaceDoc" validate:"required"`
	Version           *float64    `mapstructure:"version" validate:"required"`
	FechaCreacion     *time.Time  `mapstructure:"fechaCreacion"`
	FechaModificacion *time.Time  `mapstructure:"fechaModificacion"`
	Activo            *bool       `mapstructure:"activo" validate:"required"`
}

// RefRequest references a nested block by id only
type RefRequest struct {
	ID *int `mapstructure:"id" validate:"required"`
}

// UpdatePlantillaRequest is the payload accepted when replacing a plantilla
type UpdatePlantillaRequest struct {
	ID                *int           `mapstructure:"id" validate:"required"`
	Nombre            *string        `mapstructure:"nombre" validate:"required"`
	Descripcion       *string        `mapstructure:"descripcion" validate:"required"`
	Secciones         *BloqueRequest `mapstructure:"secciones" validate:"required"`
	Minutas           *BloqueRequest `mapstructure:"minutas" validate:"required"`
	Titulos           *BloqueRequest `mapstructure:"titulos" validate:"required"`
	Imagenes          *ImagenRequest `mapstructure:"imagenes" validate:"required"`
	EnlaceDoc         *string        `mapstructure:"enlaceDoc" validate:"required"`
	Version           *float64       `mapstructure:"version" validate:"required"`
	FechaCreacion     *time.Time     `mapstructure:"fechaCreacion"`
	FechaModificacion *time.Time     `mapstructure:"fechaModificacion"`
	Activo            *bool          `mapstructure:"activo" validate:"required"`
}

// BloqueRequest is the full shape of a section, title or minuta
type BloqueRequest struct {
	ID                *int                   `mapstructure:"id" validate:"required"`
	Nombre            *string                `mapstructure:"nombre" validate:"required"`
	Descripcion       *string                `mapstructure:"descripcion" validate:"required"`
	Valor             *string                `mapstructure:"valor" validate:"required"`
	CamposAdicionales *CampoAdicionalRequest `mapstructure:"camposAdicionales" validate:"required"`
	EstilosFuente     *EstiloFuenteRequest   `mapstructure:"estilosFuente" validate:"required"`
	FechaCreacion     *time.Time             `mapstructure:"fechaCreacion"`
	FechaModificacion *time.Time             `mapstructure:"fechaModificacion"`
	Activo            *bool                  `mapstructure:"activo" validate:"required"`
}

// ImagenRequest is the full shape of an image; data is base64 encoded
type ImagenRequest struct {
	ID                *int       `mapstructure:"id" validate:"required"`
	Nombre            *string    `mapstructure:"nombre" validate:"required"`
	Data              []byte     `mapstructure:"data" validate:"required"`
	FechaCreacion     *time.Time `mapstructure:"fechaCreacion"`
	FechaModificacion *time.Time `mapstructure:"fechaModificacion"`
	Activo            *bool      `mapstructure:"activo" validate:"required"`
}

// CampoAdicionalRequest is the shape of an additional field
type CampoAdicionalRequest struct {
	ID                *int                 `mapstructure:"id" validate:"required"`
	Nombre            *string              `mapstructure:"nombre" validate:"required"`
	Descripcion       *string              `mapstructure:"descripcion" validate:"required"`
	Valor             *string              `mapstructure:"valor" validate:"required"`
	EstilosFuente     *EstiloFuenteRequest `mapstructure:"estilosFuente" validate:"required"`
	FechaCreacion     *time.Time           `mapstructure:"fechaCreacion"`
	FechaModificacion *time.Time           `mapstructure:"fechaModificacion"`
	Activo            *bool                `mapstructure:"activo" validate:"required"`
}

// EstiloFuenteRequest is the shape of a font style
type EstiloFuenteRequest struct {
	ID                *int       `mapstructure:"id" validate:"required"`
	Tamano            *int       `mapstructure:"tamaño" validate:"required"`
	Estilo            *string    `mapstructure:"estilo" validate:"required"`
	Grosor            *string    `mapstructure:"grosor" validate:"required"`
	Altura            *int       `mapstructure:"altura" validate:"required"`
	Separacion        *int       `mapstructure:"separacion" validate:"required"`
	Decoracion        *string    `mapstructure:"decoracion" validate:"required"`
	Transformacion    *string    `mapstructure:"transformacion" validate:"required"`
	Alineacion        *string    `mapstructure:"alineacion" validate:"required"`
	Identacion        *int       `mapstructure:"identacion" validate:"required"`
	FechaCreacion     *time.Time `mapstructure:"fechaCreacion"`
	FechaModificacion *time.Time `mapstructure:"fechaModificacion"`
	Activo            *bool      `mapstructure:"activo" validate:"required"`
}

// ToPlantilla builds the stored record; now supplies missing creation timestamps.
func (r *CreatePlantillaRequest) ToPlantilla(now time.Time) *Plantilla {
	return &Plantilla{
		ID:                *r.ID,
		Nombre:            *r.Nombre,
		Descripcion:       *r.Descripcion,
		Secciones:         Seccion{ID: *r.Secciones.ID},
		Minutas:           Minuta{ID: *r.Minutas.ID},
		Titulos:           Titulo{ID: *r.Titulos.ID},
		Imagenes:          Imagen{ID: *r.Imagenes.ID},
		EnlaceDoc:         *r.EnlaceDoc,
		Version:           *r.Version,
		FechaCreacion:     createdAt(r.FechaCreacion, now),
		FechaModificacion: r.FechaModificacion,
		Activo:            *r.Activo,
	}
}

// ToPlantilla builds the stored record; now supplies missing creation timestamps.
func (r *UpdatePlantillaRequest) ToPlantilla(now time.Time) *Plantilla {
	return &Plantilla{
		ID:                *r.ID,
		Nombre:            *r.Nombre,
		Descripcion:       *r.Descripcion,
		Secciones:         r.Secciones.toBloque(now),
		Minutas:           r.Minutas.toBloque(now),
		Titulos:           r.Titulos.toBloque(now),
		Imagenes:          r.Imagenes.toImagen(now),
		EnlaceDoc:         *r.EnlaceDoc,
		Version:           *r.Version,
		FechaCreacion:     createdAt(r.FechaCreacion, now),
		FechaModificacion: r.FechaModificacion,
		Activo:            *r.Activo,
	}
}

func (r *BloqueRequest) toBloque(now time.Time) Bloque {
	created := createdAt(r.FechaCreacion, now)
	campo := r.CamposAdicionales.toCampoAdicional(now)
	estilo := r.EstilosFuente.toEstiloFuente(now)
	return Bloque{
		ID:                *r.ID,
		Nombre:            *r.Nombre,
		Descripcion:       *r.Descripcion,
		Valor:             *r.Valor,
		CamposAdicionales: &campo,
		EstilosFuente:     &estilo,
		FechaCreacion:     &created,
		FechaModificacion: r.FechaModificacion,
		Activo:            r.Activo,
	}
}

func (r *ImagenRequest) toImagen(now time.Time) Imagen {
	created := createdAt(r.FechaCreacion, now)
	return Imagen{
		ID:                *r.ID,
		Nombre:            *r.Nombre,
		Data:              r.Data,
		FechaCreacion:     &created,
		FechaModificacion: r.FechaModificacion,
		Activo:            r.Activo,
	}
}

func (r *CampoAdicionalRequest) toCampoAdicional(now time.Time) CampoAdicional {
	return CampoAdicional{
		ID:                *r.ID,
		Nombre:            *r.Nombre,
		Descripcion:       *r.Descripcion,
		Valor:             *r.Valor,
		EstilosFuente:     r.EstilosFuente.toEstiloFuente(now),
		FechaCreacion:     createdAt(r.FechaCreacion, now),
		FechaModificacion: r.FechaModificacion,
		Activo:            *r.Activo,
	}
}

func (r *EstiloFuenteRequest) toEstiloFuente(now time.Time) EstiloFuente {
	return EstiloFuente{
		ID:                *r.ID,
		Tamano:            *r.Tamano,
		Estilo:            *r.Estilo,
		Grosor:            *r.Grosor,
		Altura:            *r.Altura,
		Separacion:        *r.Separacion,
		Decoracion:        *r.Decoracion,
		Transformacion:    *r.Transformacion,
		Alineacion:        *r.Alineacion,
		Identacion:        *r.Identacion,
		FechaCreacion:     createdAt(r.FechaCreacion, now),
		FechaModificacion: r.FechaModificacion,
		Activo:            *r.Activo,
	}
}

func createdAt(supplied *time.Time, now time.Time) time.Time {
	if supplied != nil {
		return *supplied
	}
	return now
}
