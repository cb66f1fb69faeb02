package usdx

// SaveOption configures behavior when saving songs.
//
// Example:
//
//	err := usdx.Save(song, path,
//	    usdx.WithBackup(".bak"),
//	    usdx.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string   // Suffix for backup file (e.g., ".bak")
	parse           []Option // Sigil table for writing, parse options for validation
	validate        bool     // Re-read after write to verify
	preserveModTime bool     // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup keeps the previous file before saving.
//
// The backup file will have the specified suffix appended to the original
// filename. For example, WithBackup(".bak") will create "song.txt.bak"
// before replacing "song.txt". An existing backup is overwritten; nothing
// is backed up when the target does not exist yet.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After saving, the file is re-opened and compared with the song that was
// saved. This adds overhead but catches notes that cannot be represented,
// such as a custom sigil missing from the parse options.
//
// Example:
//
//	err := usdx.Save(song, path, usdx.WithValidation())
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// Use this when a library scanner keys on timestamps and the song content
// is only being normalized.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithParseOptions passes parse options to the writer and to validation.
//
// Required when the song was parsed with WithSigil or WithTag:
//
//	opts := []usdx.Option{usdx.WithSigil('~', usdx.KindFreestyle)}
//	err := usdx.Save(song, path, usdx.WithParseOptions(opts...), usdx.WithValidation())
func WithParseOptions(opts ...Option) SaveOption {
	return func(o *saveOptions) {
		o.parse = append(o.parse, opts...)
	}
}
