package form

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Control is one located form element.
type Control interface {
	Clear() error
	Fill(value string) error
	SetInputFiles(path string) error
	IsChecked() (bool, error)
	Click() error
}

// Finder locates a control from a model-supplied identifier.
type Finder interface {
	Find(identifier string) (Control, error)
}

// Report counts what happened to each descriptor of one form.
type Report struct {
	Filled  int
	Skipped int
	Failed  int
}

type Filler struct {
	finder  Finder
	profile Profile
	log     *zap.Logger
}

func NewFiller(finder Finder, profile Profile, log *zap.Logger) *Filler {
	return &Filler{
		finder:  finder,
		profile: profile,
		log:     log,
	}
}

func isTextKind(kind string) bool {
	switch kind {
	case KindText, KindTextarea, KindEmail, KindTel, KindInput, KindURL, KindNumber:
		return true
	}
	return false
}

// Fill drives every descriptor in order. A field that cannot be located or
// filled is logged and counted; it never stops the remaining fields.
func (f *Filler) Fill(fields []FieldDescriptor, job JobAnalysis) Report {
	var rep Report
	if len(fields) == 0 {
		f.log.Warn("⚠️ no fields identified in form analysis")
		return rep
	}

	for _, field := range fields {
		if field.Identifier == "" {
			rep.Skipped++
			continue
		}

		ctl, err := f.finder.Find(field.Identifier)
		if err != nil {
			f.log.Warn("⚠️ could not find element", zap.String("field", field.Identifier), zap.Error(err))
			rep.Skipped++
			continue
		}

		filled, err := f.fillOne(ctl, field, job)
		switch {
		case err != nil:
			f.log.Error("❌ error filling field", zap.String("field", field.Identifier), zap.Error(err))
			rep.Failed++
		case filled:
			rep.Filled++
		default:
			rep.Skipped++
		}
	}

	f.log.Info("📝 form filled", zap.Int("filled", rep.Filled), zap.Int("skipped", rep.Skipped), zap.Int("failed", rep.Failed))
	return rep
}

func (f *Filler) fillOne(ctl Control, field FieldDescriptor, job JobAnalysis) (bool, error) {
	switch {
	case isTextKind(field.Kind):
		if err := ctl.Clear(); err != nil {
			return false, err
		}
		value := f.profile.ResolveValue(field, job)
		if value == "" {
			return false, nil
		}
		if err := ctl.Fill(value); err != nil {
			return false, err
		}
		f.log.Info("✍️ filled", zap.String("field", field.Identifier), zap.String("value", preview(value)))
		return true, nil

	case field.Kind == KindFile || strings.Contains(field.Category, "resume"):
		path, err := filepath.Abs(f.profile.ResumePath)
		if err != nil || f.profile.ResumePath == "" || !fileExists(path) {
			f.log.Error("❌ resume file not found", zap.String("path", f.profile.ResumePath))
			return false, nil
		}
		if err := ctl.SetInputFiles(path); err != nil {
			return false, err
		}
		f.log.Info("📎 uploaded resume", zap.String("path", path))
		return true, nil

	case field.Kind == KindSelect:
		f.log.Info("dropdown detected, not handled", zap.String("field", field.Identifier))
		return false, nil

	case field.Kind == KindCheckbox || field.Kind == KindRadio:
		checked, err := ctl.IsChecked()
		if err != nil {
			return false, err
		}
		if checked {
			return false, nil
		}
		if err := ctl.Click(); err != nil {
			return false, err
		}
		f.log.Info("☑️ selected", zap.String("field", field.Identifier))
		return true, nil
	}

	f.log.Debug("unsupported field kind", zap.String("field", field.Identifier), zap.String("kind", field.Kind))
	return false, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func preview(value string) string {
	r := []rune(value)
	if len(r) <= 20 {
		return value
	}
	return string(r[:20]) + "..."
}
