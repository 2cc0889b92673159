// Package bolt implementa la puerta de persistencia clave-valor del
// dispositivo sobre bbolt: un archivo local, un bucket, escrituras
// síncronas. La fachada guarda el estado completo bajo una sola clave.
package bolt

import (
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"
)

const bucketName = "inventario"

// Gateway almacén clave-valor respaldado por un archivo bbolt.
type Gateway struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo y garantiza el bucket.
func Open(path string) (*Gateway, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: abrir %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, berr := tx.CreateBucketIfNotExists([]byte(bucketName))
		return berr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: crear bucket: %w", err)
	}
	return &Gateway{db: db}, nil
}

// Get devuelve el valor de la clave, o (nil, nil) si no existe.
func (g *Gateway) Get(key string) ([]byte, error) {
	var out []byte
	err := g.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if raw != nil {
			// bbolt reusa el buffer fuera de la transacción; copiar siempre.
			out = make([]byte, len(raw))
			copy(out, raw)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bolt: leer %s: %w", key, err)
	}
	return out, nil
}

// Set escribe el valor bajo la clave de forma síncrona.
func (g *Gateway) Set(key string, value []byte) error {
	err := g.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("bolt: escribir %s: %w", key, err)
	}
	return nil
}

// Clear vacía el bucket completo.
func (g *Gateway) Clear() error {
	err := g.db.Update(func(tx *bbolt.Tx) error {
		if derr := tx.DeleteBucket([]byte(bucketName)); derr != nil {
			return derr
		}
		_, cerr := tx.CreateBucket([]byte(bucketName))
		return cerr
	})
	if err != nil {
		return fmt.Errorf("bolt: limpiar bucket: %w", err)
	}
	return nil
}

// Close cierra el archivo.
func (g *Gateway) Close() error {
	return g.db.Close()
}
