package gui

import (
	"filedrop/internal/app"
	"filedrop/internal/completion"
	"filedrop/internal/config"
	"filedrop/internal/content"
	"filedrop/internal/picker"

	fyneapp "fyne.io/fyne/v2/app"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
}

// Factory creates GUI instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{config: cfg}
}

// Create wires the completion engine, loader and native picker into a new
// window backed by a real fyne application.
func (f *Factory) Create() (Interface, error) {
	engine, err := completion.New(completion.Options{Exclude: f.config.Completion.Exclude})
	if err != nil {
		return nil, err
	}
	controller := app.NewController(engine, content.NewLoader())
	return NewApp(fyneapp.NewWithID(AppID), f.config, controller, picker.Native{}), nil
}
