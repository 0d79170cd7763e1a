package domainio

import (
	"encoding/json"
	"io"

	"github.com/femhub/meshgen"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MeshDocument is the mesh in the shape FEM solvers take it: node
// coordinates, elements as three node indexes plus a tag, and boundary edges
// as two node indexes plus a marker.
type MeshDocument struct {
	Name       string       `yaml:"name" json:"name"`
	Nodes      [][2]float64 `yaml:"nodes,flow" json:"nodes"`
	Elements   [][4]int     `yaml:"elements,flow" json:"elements"`
	Boundaries [][3]int     `yaml:"boundaries,flow" json:"boundaries"`
}

func NewMeshDocument(name string, mesh *meshgen.Mesh, elementTag int) *MeshDocument {
	doc := &MeshDocument{
		Name:       name,
		Elements:   mesh.Elements(elementTag),
		Boundaries: mesh.Boundaries(),
	}
	for _, p := range mesh.Nodes() {
		doc.Nodes = append(doc.Nodes, [2]float64{p.X, p.Y})
	}
	return doc
}

// WriteMesh encodes the mesh as a JSON or YAML document, or as a WKT
// GEOMETRYCOLLECTION of triangle POLYGONs.
func WriteMesh(w io.Writer, format, name string, mesh *meshgen.Mesh, elementTag int) error {
	if format == FormatWKT {
		_, err := io.WriteString(w, mesh.AsWKT()+"\n")
		return errors.Wrap(err, "writing mesh")
	}
	return encode(w, format, NewMeshDocument(name, mesh, elementTag))
}

// WriteDomain encodes the domain as a JSON or YAML document in nodes/edges
// form, or as a WKT POLYGON.
func WriteDomain(w io.Writer, format, name string, domain *meshgen.Domain) error {
	if format == FormatWKT {
		_, err := io.WriteString(w, domain.AsWKT()+"\n")
		return errors.Wrap(err, "writing domain")
	}
	return encode(w, format, DocumentOf(name, domain))
}

func encode(w io.Writer, format string, doc interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encoding JSON")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
