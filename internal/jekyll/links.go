package jekyll

import (
	"net/url"
	"path/filepath"
	"strings"
)

// LinkRewriter maps raw markdown link targets onto the generated site's
// layout. It is a pure function of the configured mapping: the rewritten
// location of an asset link and the location the relocator copies that asset
// to come from the same rule, so the two always agree.
type LinkRewriter struct {
	BaseDir        string // source tree root
	HomeSource     string // home page path relative to BaseDir
	SubpagesFolder string // subpages root relative to BaseDir, "" when none configured
	MediaFolder    string // media destination folder relative to the site root
}

// Rewrite maps one link target found in the file at sourcePath.
//
// Absolute URLs and pure anchors pass through. Relative targets naming a
// markdown file inside the source tree map to that page's post-flattening
// URL; every other relative target is treated as a media reference and maps
// into the media folder at the asset's relocated path. Targets that resolve
// outside the source tree pass through untouched: they have no counterpart
// in the generated site.
func (r *LinkRewriter) Rewrite(target, sourcePath string) string {
	if target == "" || strings.HasPrefix(target, "#") {
		return target
	}
	if u, err := url.Parse(target); err != nil || u.Scheme != "" {
		return target
	}

	rawPath, fragment := splitFragment(target)
	if rawPath == "" {
		return target
	}

	resolved := filepath.Join(filepath.Dir(sourcePath), filepath.FromSlash(rawPath))
	rel, err := filepath.Rel(r.BaseDir, resolved)
	if err != nil {
		return target
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return target
	}

	if IsMarkdown(rel) {
		return r.pageTarget(rel, fragment, target)
	}

	return r.MediaFolder + "/" + rel + fragment
}

// pageTarget maps a markdown file (path relative to BaseDir) to the URL of
// its converted location.
func (r *LinkRewriter) pageTarget(rel, fragment, original string) string {
	if rel == filepath.ToSlash(r.HomeSource) {
		return "/" + fragment
	}

	if r.SubpagesFolder != "" {
		prefix := filepath.ToSlash(r.SubpagesFolder)
		if prefix == "." {
			return PageURL(rel) + fragment
		}
		if sub, ok := strings.CutPrefix(rel, prefix+"/"); ok {
			return PageURL(sub) + fragment
		}
	}

	// Markdown outside the converted set has no destination; leave it alone.
	return original
}

func splitFragment(target string) (string, string) {
	if idx := strings.Index(target, "#"); idx >= 0 {
		return target[:idx], target[idx:]
	}
	return target, ""
}
