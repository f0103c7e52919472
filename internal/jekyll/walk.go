package jekyll

import (
	"os"
	"path/filepath"
)

// WalkFunc is called for every regular file under the walked root. rel is the
// file's path relative to the root, in slash form. When a directory cannot be
// read, WalkFunc is called once for that directory with err set and path/rel
// naming the directory. Returning a non-nil error stops the walk.
type WalkFunc func(path, rel string, err error) error

// WalkFiles visits every regular file under root in lexical path order.
//
// The traversal uses an explicit stack rather than recursion, so its order is
// auditable and its depth bounded regardless of tree shape. Directories for
// which skipDir returns true are not descended into; skipDir may be nil.
func WalkFiles(root string, skipDir func(name string) bool, fn WalkFunc) error {
	type entry struct {
		path  string
		rel   string
		isDir bool
	}

	stack := []entry{{path: root, rel: ".", isDir: true}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !cur.isDir {
			if err := fn(cur.path, cur.rel, nil); err != nil {
				return err
			}
			continue
		}

		entries, err := os.ReadDir(cur.path)
		if err != nil {
			if err := fn(cur.path, cur.rel, err); err != nil {
				return err
			}
			continue
		}

		// os.ReadDir returns entries sorted by name; pushing them in reverse
		// makes the stack pop them in lexical order.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if e.IsDir() && skipDir != nil && skipDir(e.Name()) {
				continue
			}
			if !e.IsDir() && !e.Type().IsRegular() {
				continue
			}
			rel := e.Name()
			if cur.rel != "." {
				rel = cur.rel + "/" + e.Name()
			}
			stack = append(stack, entry{
				path:  filepath.Join(cur.path, e.Name()),
				rel:   rel,
				isDir: e.IsDir(),
			})
		}
	}
	return nil
}
