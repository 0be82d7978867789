// Package localstore implementa el puerto configurator.Storage: el almacén
// clave-valor duradero donde el configurador espeja su snapshot y el diario
// de pasos. Una implementación sobre ficheros y otra en memoria; los
// consumidores degradan a memoria cuando la de ficheros falla.
package localstore

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maitr/sitebuilder-api/internal/application/configurator"
	"github.com/maitr/sitebuilder-api/internal/domain"
)

// Asegura que FileStore implementa el puerto.
var _ configurator.Storage = (*FileStore)(nil)

// FileStore almacén clave-valor sobre ficheros: un fichero JSON por clave
// bajo un directorio. Las escrituras son atómicas (tmp + rename) para que
// una caída a mitad de escritura no deje un snapshot corrupto.
type FileStore struct {
	dir string
}

// NewFileStore crea el directorio si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: crear %s: %v", domain.ErrStorageUnavailable, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return string(raw), true, nil
}

func (s *FileStore) Set(key, value string) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: borrar %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// path codifica la clave en hex: las claves llevan ':' y otros caracteres
// no aptos para nombres de fichero.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, hex.EncodeToString([]byte(key))+".json")
}
