package os

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hectane/go-acl"
)

var ErrCannotCreateFile = errors.New("cannot create file")
var ErrCannotUpdateFile = errors.New("cannot update file")

// WriteWithBackup overwrites the file at path with content, accessible only by the current user.
//
// The previous content is copied to "<path>.backup" before overwriting.
// The backup is removed when the write succeeds, and left when it fails.
//
// Missing parent directories are created with permission 0700.
func WriteWithBackup(path string, content []byte) error {
	saving := false

	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}

	bkpath := path + ".backup"
	bk, err := NewSafeFile(bkpath)
	if err != nil {
		return err
	}
	defer func() {
		if !saving {
			os.Remove(bkpath)
		}
	}()
	defer bk.Close()

	f, err := os.OpenFile(path, os.O_RDWR, os.FileMode(0600))
	if err == nil {
		// In case of the existing file with loose permissions,
		// enforce permission to 0600.
		if err := acl.Chmod(path, os.FileMode(0600)); err != nil {
			f.Close()
			return err
		}
	} else {
		if os.IsPermission(err) {
			return fmt.Errorf(
				"%w, because no permission to write file at %s",
				ErrCannotUpdateFile, path,
			)
		} else if os.IsNotExist(err) {
			f_, err_ := NewSafeFile(path)
			if err_ != nil {
				return fmt.Errorf("%w at %s: %w", ErrCannotCreateFile, path, err_)
			}
			f = f_
		} else {
			return err
		}
	}
	defer f.Close()

	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if _, err := io.Copy(bk, f); err != nil {
		return err
	}

	saving = true
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		return err
	}

	saving = false
	return nil
}
