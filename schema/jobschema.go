// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package schema

// Modes is the accepted set for calculation_mode, matching the calculators
// the engine registers.
var Modes = []string{
	"classical",
	"classical_risk",
	"classical_bcr",
	"disaggregation",
	"event_based",
	"event_based_risk",
	"ebr",
	"scenario",
	"scenario_damage",
	"scenario_risk",
}

// Job returns the job configuration schema. The table is rebuilt on each
// call so a caller can tweak its copy (e.g. restrict the mode choices the
// way the engine does per installed calculator) without affecting others.
func Job() *Table {
	return NewTable([]Entry{
		// [general]
		{Section: "general", Key: "description", Kind: String,
			Default: "", HasDefault: true,
			Doc: "Free-form description of the job."},
		{Section: "general", Key: "calculation_mode", Kind: Enum,
			Choices: Modes, Required: true,
			Doc: "Calculator the produced parameters are meant for."},
		{Section: "general", Key: "random_seed", Kind: Int,
			Default: "42", HasDefault: true,
			Doc: "Seed for logic tree sampling."},
		{Section: "general", Key: "concurrent_tasks", Kind: Int,
			Default: "64", HasDefault: true, Min: gt(0),
			Doc: "Hint for the engine's task fan-out."},
		{Section: "general", Key: "master_seed", Kind: Int,
			Default: "0", HasDefault: true,
			Doc: "Seed for the risk sampling of the vulnerability functions."},

		// [geometry]
		{Section: "geometry", Key: "region", Kind: Coords,
			Doc: "Polygon of lon/lat vertices bounding the computation."},
		{Section: "geometry", Key: "region_grid_spacing", Kind: Float,
			Unit: "km", Min: gt(0),
			Doc: "Spacing of the grid discretizing the region."},
		{Section: "geometry", Key: "sites", Kind: Coords,
			Doc: "Explicit list of lon/lat sites."},
		{Section: "geometry", Key: "sites_csv", Kind: Path,
			Doc: "CSV file with one lon/lat site per row."},

		// [site_params]
		{Section: "site_params", Key: "site_model_file", Kind: Path,
			Doc: "Site model file; when given, the reference_* values are unused."},
		{Section: "site_params", Key: "reference_vs30_value", Kind: Float,
			Unit: "m/s", Min: gt(0),
			Doc: "Uniform vs30 applied to every site."},
		{Section: "site_params", Key: "reference_vs30_type", Kind: Enum,
			Choices: []string{"measured", "inferred"},
			Doc: "Whether the reference vs30 was measured or inferred."},
		{Section: "site_params", Key: "reference_depth_to_2pt5km_per_sec",
			Kind: Float, Unit: "km", Min: gt(0),
			Doc: "Depth to the 2.5 km/s shear wave velocity horizon."},
		{Section: "site_params", Key: "reference_depth_to_1pt0km_per_sec",
			Kind: Float, Unit: "m", Min: gt(0),
			Doc: "Depth to the 1.0 km/s shear wave velocity horizon."},

		// [erf]
		{Section: "erf", Key: "rupture_mesh_spacing", Kind: Float,
			Unit: "km", Default: "5.0", HasDefault: true, Min: gt(0),
			Doc: "Mesh spacing for simple fault ruptures."},
		{Section: "erf", Key: "complex_fault_mesh_spacing", Kind: Float,
			Unit: "km", Min: gt(0),
			Doc: "Mesh spacing for complex faults; falls back to rupture_mesh_spacing."},
		{Section: "erf", Key: "width_of_mfd_bin", Kind: Float,
			Min: gt(0),
			Doc: "Magnitude-frequency distribution bin width."},
		{Section: "erf", Key: "area_source_discretization", Kind: Float,
			Unit: "km", Min: gt(0),
			Doc: "Discretization step for area sources."},

		// [logic_tree]
		{Section: "logic_tree", Key: "number_of_logic_tree_samples",
			Kind: Int, Default: "0", HasDefault: true, Min: ge(0),
			Doc: "Montecarlo samples of the logic tree; 0 enumerates all branches."},
		{Section: "logic_tree", Key: "source_model_logic_tree_file",
			Kind: Path,
			Doc: "Source model logic tree file."},
		{Section: "logic_tree", Key: "gsim_logic_tree_file", Kind: Path,
			Doc: "Ground shaking intensity model logic tree file."},

		// [calculation]
		{Section: "calculation", Key: "investigation_time", Kind: Float,
			Unit: "years", Min: gt(0),
			Doc: "Time span the hazard refers to."},
		{Section: "calculation", Key: "intensity_measure_types",
			Kind: StringList,
			Doc: "IMTs to compute, when no levels are needed."},
		{Section: "calculation", Key: "intensity_measure_types_and_levels",
			Kind: Dict,
			Doc: "JSON object mapping each IMT to its increasing intensity levels."},
		{Section: "calculation", Key: "truncation_level", Kind: Float,
			Min: ge(0),
			Doc: "Truncation of the GSIM distribution, in standard deviations."},
		{Section: "calculation", Key: "maximum_distance", Kind: Float,
			Unit: "km", Min: gt(0),
			Doc: "Sources beyond this distance from a site are discarded."},
		{Section: "calculation", Key: "gsim", Kind: String,
			Doc: "Single GSIM name, used by scenario calculators."},
		{Section: "calculation", Key: "time_event", Kind: String,
			Doc: "Occupancy period (day/night/transit) for occupant counts."},

		// [event_based_params]
		{Section: "event_based_params", Key: "ses_per_logic_tree_path",
			Kind: Int, Default: "1", HasDefault: true, Min: gt(0),
			Doc: "Stochastic event sets generated per logic tree path."},
		{Section: "event_based_params", Key: "ground_motion_correlation_model",
			Kind: Enum, Choices: []string{"JB2009"}, BlankDisables: true,
			Doc: "Spatial correlation model; blank disables correlation."},
		{Section: "event_based_params", Key: "ground_motion_correlation_params",
			Kind: Dict,
			Doc: "JSON object of keyword arguments for the correlation model."},
		{Section: "event_based_params", Key: "number_of_ground_motion_fields",
			Kind: Int, Min: gt(0),
			Doc: "GMFs to import or compute for scenario calculators."},

		// [risk]
		{Section: "risk", Key: "exposure_file", Kind: Path,
			Doc: "Exposure model file."},
		{Section: "risk", Key: "structural_vulnerability_file", Kind: Path,
			Doc: "Vulnerability functions for structural cost."},
		{Section: "risk", Key: "nonstructural_vulnerability_file", Kind: Path,
			Doc: "Vulnerability functions for nonstructural cost."},
		{Section: "risk", Key: "contents_vulnerability_file", Kind: Path,
			Doc: "Vulnerability functions for contents cost."},
		{Section: "risk", Key: "occupants_vulnerability_file", Kind: Path,
			Doc: "Vulnerability functions for occupants."},
		{Section: "risk", Key: "business_interruption_vulnerability_file",
			Kind: Path,
			Doc: "Vulnerability functions for business interruption."},
		{Section: "risk", Key: "fragility_file", Kind: Path,
			Doc: "Fragility functions, required by damage calculators."},
		{Section: "risk", Key: "region_constraint", Kind: Coords,
			Doc: "Polygon restricting which exposure assets are considered."},
		{Section: "risk", Key: "asset_hazard_distance", Kind: Float,
			Unit: "km", Default: "5.0", HasDefault: true, Min: gt(0),
			Doc: "Maximum distance between an asset and its hazard site."},
		{Section: "risk", Key: "insured_losses", Kind: Bool,
			Default: "false", HasDefault: true,
			Doc: "Also compute insured loss curves."},
		{Section: "risk", Key: "asset_correlation", Kind: Float,
			Default: "0", HasDefault: true, Min: ge(0), Max: le(1),
			Doc: "Correlation of losses between assets of the same taxonomy."},
		{Section: "risk", Key: "loss_curve_resolution", Kind: Int,
			Default: "50", HasDefault: true, Min: gt(0),
			Doc: "Number of points on each loss curve."},
		{Section: "risk", Key: "conditional_loss_poes", Kind: Floats,
			Min: gt(0), Max: lt(1),
			Doc: "Probabilities of exceedance for conditional loss maps."},
		{Section: "risk", Key: "ignore_missing_costs", Kind: StringList,
			Doc: "Cost types allowed to be absent from the exposure."},
		{Section: "risk", Key: "avg_losses", Kind: Bool,
			Default: "false", HasDefault: true,
			Doc: "Also compute average losses per asset."},

		// [output]
		{Section: "output", Key: "export_dir", Kind: Path,
			BlankDisables: true,
			Doc: "Directory the engine writes exported outputs into."},
		{Section: "output", Key: "exports", Kind: StringList,
			BlankDisables: true,
			Doc: "Formats to export automatically (csv, xml, geojson)."},
		{Section: "output", Key: "mean_hazard_curves", Kind: Bool,
			Default: "false", HasDefault: true,
			Doc: "Compute mean hazard curves across realizations."},
		{Section: "output", Key: "quantile_hazard_curves", Kind: Floats,
			Min: gt(0), Max: lt(1),
			Doc: "Quantile levels of the hazard curves to compute."},
		{Section: "output", Key: "hazard_maps", Kind: Bool,
			Default: "false", HasDefault: true,
			Doc: "Compute hazard maps at the given poes."},
		{Section: "output", Key: "uniform_hazard_spectra", Kind: Bool,
			Default: "false", HasDefault: true,
			Doc: "Compute uniform hazard spectra at the given poes."},
		{Section: "output", Key: "poes", Kind: Floats,
			Min: gt(0), Max: le(1),
			Doc: "Probabilities of exceedance for maps and spectra."},
		{Section: "output", Key: "individual_curves", Kind: Bool,
			Default: "true", HasDefault: true,
			Doc: "Keep the per-realization hazard curves."},
		{Section: "output", Key: "ground_motion_fields", Kind: Bool,
			Default: "false", HasDefault: true,
			Doc: "Save the generated ground motion fields."},
		{Section: "output", Key: "hazard_curves_from_gmfs", Kind: Bool,
			Default: "false", HasDefault: true,
			Doc: "Post-process GMFs into hazard curves."},
	}, map[string]string{
		// Real job files spell the output section both ways.
		"outputs": "output",
	})
}
