package config

// Default returns the built-in configuration: the nf-core/hlatyping tool
// table in its fixed declaration order plus the historical report settings.
// Declaration order is significant and flows through every output.
func Default() *Config {
	return &Config{
		Tools: []ToolConfig{
			{Name: "nf-core/hlatyping", File: "v_pipeline.txt", Pattern: `(\S+)`},
			{Name: "Nextflow", File: "v_nextflow.txt", Pattern: `(\S+)`},
			{Name: "Samtools", File: "v_samtools.txt", Pattern: `samtools (\S+)`},
			{Name: "Yara", File: "v_yara.txt", Pattern: `yara_mapper version: (\S+)`},
			{Name: "Optitype", File: "v_optitype.txt", Pattern: `Version: (\S+)`},
			{Name: "MultiQC", File: "v_multiqc.txt", Pattern: `multiqc, version (\S+)`},
		},
		Report: ReportConfig{
			ID:          "software_versions",
			SectionName: "nf-core/hlatyping Software Versions",
			SectionHref: "https://github.com/nf-core/hlatyping",
			Description: "are collected at run time from the software output.",
			TSV:         "software_versions.csv",
			HTMLClass:   "dl-horizontal",
		},
	}
}
