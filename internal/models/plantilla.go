package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Plantilla is a reusable document template as stored in the plantilla collection.
// The database-generated _id is not part of this type; it is assigned on insert
// and never supplied by callers.
type Plantilla struct {
	ID                int        `json:"id" bson:"id"`
	Nombre            string     `json:"nombre" bson:"nombre"`
	Descripcion       string     `json:"descripcion" bson:"descripcion"`
	Secciones         Seccion    `json:"secciones" bson:"secciones"`
	Minutas           Minuta     `json:"minutas" bson:"minutas"`
	Titulos           Titulo     `json:"titulos" bson:"titulos"`
	Imagenes          Imagen     `json:"imagenes" bson:"imagenes"`
	EnlaceDoc         string     `json:"enlaceDoc" bson:"enlaceDoc"`
	Version           float64    `json:"version" bson:"version"`
	FechaCreacion     time.Time  `json:"fechaCreacion" bson:"fechaCreacion"`
	FechaModificacion *time.Time `json:"fechaModificacion" bson:"fechaModificacion"`
	Activo            bool       `json:"activo" bson:"activo"`
}

// Bloque is the shape shared by sections, titles and minutas. Blocks created
// through the create payload only carry an id; the update payload fills the rest.
type Bloque struct {
	ID                int             `json:"id" bson:"id"`
	Nombre            string          `json:"nombre,omitempty" bson:"nombre,omitempty"`
	Descripcion       string          `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Valor             string          `json:"valor,omitempty" bson:"valor,omitempty"`
	CamposAdicionales *CampoAdicional `json:"camposAdicionales,omitempty" bson:"camposAdicionales,omitempty"`
	EstilosFuente     *EstiloFuente   `json:"estilosFuente,omitempty" bson:"estilosFuente,omitempty"`
	FechaCreacion     *time.Time      `json:"fechaCreacion,omitempty" bson:"fechaCreacion,omitempty"`
	FechaModificacion *time.Time      `json:"fechaModificacion,omitempty" bson:"fechaModificacion,omitempty"`
	Activo            *bool           `json:"activo,omitempty" bson:"activo,omitempty"`
}

// MarshalBSON stores an unset modification time as null on full blocks, like
// the root record. Id-only blocks from the create payload stay id-only.
func (b Bloque) MarshalBSON() ([]byte, error) {
	type plain Bloque
	return marshalWithModification(plain(b), b.FechaCreacion != nil && b.FechaModificacion == nil)
}

// Seccion is a template section
type Seccion = Bloque

// Titulo is a template title block
type Titulo = Bloque

// Minuta is a template memo block
type Minuta = Bloque

// Imagen is an image attached to a template
type Imagen struct {
	ID                int        `json:"id" bson:"id"`
	Nombre            string     `json:"nombre,omitempty" bson:"nombre,omitempty"`
	Data              []byte     `json:"data,omitempty" bson:"data,omitempty"`
	FechaCreacion     *time.Time `json:"fechaCreacion,omitempty" bson:"fechaCreacion,omitempty"`
	FechaModificacion *time.Time `json:"fechaModificacion,omitempty" bson:"fechaModificacion,omitempty"`
	Activo            *bool      `json:"activo,omitempty" bson:"activo,omitempty"`
}

// MarshalBSON stores an unset modification time as null on full images
func (i Imagen) MarshalBSON() ([]byte, error) {
	type plain Imagen
	return marshalWithModification(plain(i), i.FechaCreacion != nil && i.FechaModificacion == nil)
}

func marshalWithModification(v interface{}, nullModification bool) ([]byte, error) {
	raw, err := bson.Marshal(v)
	if err != nil || !nullModification {
		return raw, err
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return bson.Marshal(append(doc, bson.E{Key: "fechaModificacion", Value: nil}))
}

// CampoAdicional is an extra named field attached to a block
type CampoAdicional struct {
	ID                int          `json:"id" bson:"id"`
	Nombre            string       `json:"nombre" bson:"nombre"`
	Descripcion       string       `json:"descripcion" bson:"descripcion"`
	Valor             string       `json:"valor" bson:"valor"`
	EstilosFuente     EstiloFuente `json:"estilosFuente" bson:"estilosFuente"`
	FechaCreacion     time.Time    `json:"fechaCreacion" bson:"fechaCreacion"`
	FechaModificacion *time.Time   `json:"fechaModificacion" bson:"fechaModificacion"`
	Activo            bool         `json:"activo" bson:"activo"`
}

// EstiloFuente controls how a block's text is rendered
type EstiloFuente struct {
	ID                int        `json:"id" bson:"id"`
	Tamano            int        `json:"tamaño" bson:"tamaño"`
	Estilo            string     `json:"estilo" bson:"estilo"`
	Grosor            string     `json:"grosor" bson:"grosor"`
	Altura            int        `json:"altura" bson:"altura"`
	Separacion        int        `json:"separacion" bson:"separacion"`
	Decoracion        string     `json:"decoracion" bson:"decoracion"`
	Transformacion    string     `json:"transformacion" bson:"transformacion"`
	Alineacion        string     `json:"alineacion" bson:"alineacion"`
	Identacion        int        `json:"identacion" bson:"identacion"`
	FechaCreacion     time.Time  `json:"fechaCreacion" bson:"fechaCreacion"`
	FechaModificacion *time.Time `json:"fechaModificacion" bson:"fechaModificacion"`
	Activo            bool       `json:"activo" bson:"activo"`
}

// Document is a stored record as read back from the collection, keyed by field name.
type Document map[string]interface{}
