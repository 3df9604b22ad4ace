// vcfdownload fetches the per-chromosome gnomAD sites VCFs (and their tabix
// indexes) into a local directory, skipping files that are already present.
// A failed file is logged and the loop moves on; rerunning picks up where
// it left off.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/phite-bio/gwastools/refpanel"
)

const defaultBaseURL = "https://storage.googleapis.com/gcp-public-data--gnomad/release/3.1.2/vcf/genomes"

var extensions = []string{"vcf.bgz", "vcf.bgz.tbi"}

func main() {
	var destDir, baseURL string

	flag.StringVar(&destDir, "dest", "gnomad_grch38_vcf", "Directory to download into")
	flag.StringVar(&baseURL, "base-url", defaultBaseURL, "Base URL of the per-chromosome gnomAD sites files")
	flag.Parse()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		log.Fatalln(err)
	}

	ctx := context.Background()
	failures := 0
	for chrom := 1; chrom <= 22; chrom++ {
		for _, ext := range extensions {
			fname := fmt.Sprintf("gnomad.genomes.v3.1.2.sites.chr%d.%s", chrom, ext)
			url := fmt.Sprintf("%s/%s", baseURL, fname)
			dest := filepath.Join(destDir, fname)

			if err := refpanel.Download(ctx, url, dest); err != nil {
				log.Println("Failed to download", url, ":", err)
				failures++
			}
		}
	}

	if failures > 0 {
		log.Fatalln(failures, "files failed to download")
	}
	log.Println("All files downloaded")
}
