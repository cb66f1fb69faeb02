package usdx

import "testing"

func TestSaveOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := defaultSaveOptions()

		if opts.backupSuffix != "" {
			t.Errorf("expected empty backupSuffix, got %q", opts.backupSuffix)
		}
		if opts.validate {
			t.Error("expected validate to be false")
		}
		if opts.preserveModTime {
			t.Error("expected preserveModTime to be false")
		}
		if len(opts.parse) != 0 {
			t.Errorf("expected no parse options, got %d", len(opts.parse))
		}
	})

	t.Run("WithBackup", func(t *testing.T) {
		opts := defaultSaveOptions()
		WithBackup(".bak")(opts)

		if opts.backupSuffix != ".bak" {
			t.Errorf("expected backupSuffix %q, got %q", ".bak", opts.backupSuffix)
		}
	})

	t.Run("WithValidation", func(t *testing.T) {
		opts := defaultSaveOptions()
		WithValidation()(opts)

		if !opts.validate {
			t.Error("expected validate to be true")
		}
	})

	t.Run("WithPreserveModTime", func(t *testing.T) {
		opts := defaultSaveOptions()
		WithPreserveModTime()(opts)

		if !opts.preserveModTime {
			t.Error("expected preserveModTime to be true")
		}
	})

	t.Run("WithParseOptions", func(t *testing.T) {
		opts := defaultSaveOptions()
		WithParseOptions(WithLenientParsing())(opts)
		WithParseOptions(WithSigil('~', KindFreestyle))(opts)

		if len(opts.parse) != 2 {
			t.Errorf("expected 2 parse options, got %d", len(opts.parse))
		}
	})
}
