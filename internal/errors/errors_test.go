package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/path/to/file", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	notFoundErr := NewFileError("file not found", "/missing/file", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFoundErr))
	assert.False(t, IsFileNotFound(fileErr))
	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileAccessDenied(notFoundErr))

	binErr := NewFileError("not a text file", "/bin/ls", NotText, nil)
	assert.True(t, IsNotText(binErr))
	assert.False(t, IsNotText(notFoundErr))

	dirErr := NewFileError("not a regular file", "/tmp", NotAFile, nil)
	assert.True(t, IsNotAFile(dirErr))
}

func TestFromFS(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"not exist", fs.ErrNotExist, FileNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, FileAccessDenied},
		{"invalid", fs.ErrInvalid, InvalidPath},
		{"other", errors.New("disk on fire"), FileOperationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileErr := FromFS(tt.err, "read failed", "/x")
			assert.Equal(t, tt.want, fileErr.Kind())
			assert.Equal(t, "/x", fileErr.Path())
			assert.True(t, Is(fileErr, tt.err))
		})
	}
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "picker.backend", InvalidConfig, nil)
	assert.Equal(t, "invalid value: picker.backend", configErr.Error())
	assert.Equal(t, "picker.backend", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	origErr := fmt.Errorf("value out of range")
	configErr = NewConfigError("invalid value", "window.width", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: window.width: value out of range", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))

	var ce *ConfigError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "window.width", ce.Param())
}

func TestErrorChains(t *testing.T) {
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/path/to/config.yaml", FileNotFound, baseErr)
	configErr := NewConfigError("config error", "log.level", InvalidConfig, fileErr)

	assert.Equal(t, "config error: log.level: file error: /path/to/config.yaml: base error", configErr.Error())
	assert.True(t, Is(configErr, baseErr))
	assert.True(t, Is(configErr, fileErr))

	var fe *FileError
	assert.True(t, As(configErr, &fe))
	assert.Equal(t, "/path/to/config.yaml", fe.Path())

	assert.True(t, IsFileNotFound(configErr))
	assert.True(t, IsInvalidConfig(configErr))
}
