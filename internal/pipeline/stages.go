package pipeline

import (
	"git.home.luguber.info/inful/divisor/internal/config"
	"git.home.luguber.info/inful/divisor/internal/jekyll"
)

// State is the orchestrator's position in the generation run.
type State string

const (
	StateIdle              State = "idle"
	StateConfigLoaded      State = "config_loaded"
	StateLayoutCreated     State = "layout_created"
	StateHomeConverted     State = "home_converted"
	StateSubpagesConverted State = "subpages_converted"
	StateAssetsCopied      State = "assets_copied"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

// Stage names one step of the run.
type Stage string

const (
	StageCreateLayout    Stage = "create_layout"
	StageConvertHome     Stage = "convert_home"
	StageConvertSubpages Stage = "convert_subpages"
	StageCopyAssets      Stage = "copy_assets"
)

// StageDef pairs a stage with its function and the state a successful pass
// transitions the run into. A stage returning an error is fatal; stages
// record recoverable problems on the report themselves.
type StageDef struct {
	Name Stage
	Next State
	Fn   func(rs *RunState) error
}

// RunState is the mutable state threaded through the stages of one run.
type RunState struct {
	Cfg       *config.SiteConfig
	SourceDir string
	DestDir   string
	State     State
	Report    *RunReport

	converter *jekyll.Converter
}

// NewRunState prepares the state for a run over a fetched source tree.
// Both trees are explicit paths; nothing downstream consults the working
// directory. The config is already validated, so the run starts in
// StateConfigLoaded.
func NewRunState(cfg *config.SiteConfig, sourceDir, destDir string) *RunState {
	rewriter := &jekyll.LinkRewriter{
		BaseDir:        sourceDir,
		HomeSource:     cfg.ContentMapping.HomePageSource,
		SubpagesFolder: subpagesFolder(cfg),
		MediaFolder:    cfg.ContentMapping.MediaDestinationFolder,
	}

	return &RunState{
		Cfg:       cfg,
		SourceDir: sourceDir,
		DestDir:   destDir,
		State:     StateConfigLoaded,
		Report:    NewRunReport(),
		converter: jekyll.NewConverter(cfg.SiteMetadata.Theme, rewriter),
	}
}

func subpagesFolder(cfg *config.SiteConfig) string {
	if !cfg.ContentMapping.HasSubpages() {
		return ""
	}
	return cfg.ContentMapping.SubpagesFolder
}
