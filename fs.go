package filefutures

// OpenResult is the outcome of [FS.Open] and [FS.Create]
type OpenResult struct {
	Handle *Handle
}

// FS issues open and create futures against a backend Opener. Handles it
// produces dispatch their operations through the same executor, so a whole
// chain shares one dispatch bridge.
type FS struct {
	opener Opener
	exec   Executor
}

// NewFS binds a backend to an executor
func NewFS(opener Opener, exec Executor) *FS {
	return &FS{opener: opener, exec: exec}
}

// Open resolves to a handle on an existing file, opened read-only
func (f *FS) Open(name string) *Future[OpenResult] {
	return f.openFuture("open", name, f.opener.Open)
}

// Create resolves to a handle on a newly created file, truncating any
// existing one. The handle is open for reading and writing.
func (f *FS) Create(name string) *Future[OpenResult] {
	return f.openFuture("create", name, f.opener.Create)
}

func (f *FS) openFuture(op, name string, open func(string) (File, error)) *Future[OpenResult] {
	return newFuture(op, nil, f.exec, func() (OpenResult, error) {
		file, err := open(name)
		if err != nil {
			return OpenResult{}, err
		}
		return OpenResult{Handle: NewHandle(file, f.exec)}, nil
	})
}
