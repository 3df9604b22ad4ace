// Package assoc filters GWAS association tables (.parquet or .duckdb) down
// to the rows matching a list of rsid values. Both storage backends converge
// on the same fixed column schema and the same exact-string matching rules.
package assoc

// Association is one row of a GWAS association table. Field order is the
// canonical column order of every table this package returns.
type Association struct {
	RSID             string  `csv:"rsid" db:"rsid" parquet:"rsid"`
	RiskAllele       string  `csv:"risk_allele" db:"risk_allele" parquet:"risk_allele"`
	Pvalue           float64 `csv:"pvalue" db:"pvalue" parquet:"pvalue"`
	Beta             float64 `csv:"beta" db:"beta" parquet:"beta"`
	Trait            string  `csv:"trait" db:"trait" parquet:"trait"`
	TraitURI         string  `csv:"trait_uri" db:"trait_uri" parquet:"trait_uri"`
	StudyID          string  `csv:"study_id" db:"study_id" parquet:"study_id"`
	MappedGene       string  `csv:"mapped_gene" db:"mapped_gene" parquet:"mapped_gene"`
	UpstreamGeneID   string  `csv:"upstream_gene_id" db:"upstream_gene_id" parquet:"upstream_gene_id"`
	DownstreamGeneID string  `csv:"downstream_gene_id" db:"downstream_gene_id" parquet:"downstream_gene_id"`
	SNPGeneIDs       string  `csv:"snp_gene_ids" db:"snp_gene_ids" parquet:"snp_gene_ids"`
	Chr              string  `csv:"chr" db:"chr" parquet:"chr"`
	ChrPos           int64   `csv:"chr_pos" db:"chr_pos" parquet:"chr_pos"`
	Context          string  `csv:"context" db:"context" parquet:"context"`
	IsIntergenic     bool    `csv:"is_intergenic" db:"is_intergenic" parquet:"is_intergenic"`
	RiskAlleleFreq   float64 `csv:"risk_allele_freq" db:"risk_allele_freq" parquet:"risk_allele_freq"`
	CI95Text         string  `csv:"ci_95_text" db:"ci_95_text" parquet:"ci_95_text"`
}

// RequiredColumns lists the column names every association source must
// expose, in canonical order. Extra source columns are ignored; a missing
// one fails the call before any filtering happens.
var RequiredColumns = []string{
	"rsid", "risk_allele", "pvalue", "beta", "trait", "trait_uri", "study_id",
	"mapped_gene", "upstream_gene_id", "downstream_gene_id", "snp_gene_ids",
	"chr", "chr_pos", "context", "is_intergenic", "risk_allele_freq",
	"ci_95_text",
}

// dedupe returns the unique identifiers in first-seen order. Request-side
// duplicates must not multiply output rows, so both backends filter on the
// de-duplicated set.
func dedupe(rsids []string) []string {
	seen := make(map[string]struct{}, len(rsids))
	unique := make([]string, 0, len(rsids))
	for _, id := range rsids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
