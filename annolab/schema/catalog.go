package schema

// The static entity catalog. Field order matters: it drives the
// selection list rendered into every query that fetches the entity.

var Project = Declare("Project",
	[]*Field{
		String("name"),
		String("description"),
		DateTime("updated_at"),
		DateTime("created_at"),
		DateTime("setup_complete"),
		DateTime("last_activity_time"),
		Int("auto_audit_number_of_labels"),
		Float("auto_audit_percentage"),
	},
	RelToMany("Dataset"),
	RelToMany("Label"),
	RelToMany("Webhook"),
	RelToOne("User", "createdBy"),
	RelToOne("Organization"),
)

var Dataset = Declare("Dataset",
	[]*Field{
		String("name"),
		String("description"),
		DateTime("updated_at"),
		DateTime("created_at"),
	},
	RelToMany("Project"),
	RelToMany("DataRow"),
	RelToOne("User", "createdBy"),
	RelToOne("Organization"),
)

var DataRow = Declare("DataRow",
	[]*Field{
		String("external_id"),
		String("row_data"),
		DateTime("updated_at"),
		DateTime("created_at"),
	},
	RelToOne("Dataset").Cached(),
	RelToMany("Label"),
	RelToMany("AssetMetadata", "metadata"),
	RelToOne("User", "createdBy"),
)

var Label = Declare("Label",
	[]*Field{
		String("label"),
		Float("seconds_to_label"),
		Float("agreement"),
		Float("benchmark_agreement"),
		Boolean("is_benchmark_reference"),
	},
	RelToOne("Project").Cached(),
	RelToOne("DataRow").Cached(),
	RelToMany("Review"),
	RelToOne("User", "createdBy"),
)

var Review = Declare("Review",
	[]*Field{
		Float("score"),
		DateTime("updated_at"),
		DateTime("created_at"),
	},
	RelToOne("Project").Cached(),
	RelToOne("Label").Cached(),
	RelToOne("User", "createdBy"),
)

var User = Declare("User",
	[]*Field{
		String("email"),
		String("name"),
		String("nickname"),
		DateTime("updated_at"),
		DateTime("created_at"),
	},
	RelToOne("Organization"),
	RelToMany("Project"),
)

var Organization = Declare("Organization",
	[]*Field{
		String("name"),
		DateTime("updated_at"),
		DateTime("created_at"),
	},
	RelToMany("User"),
	RelToMany("Project"),
	RelToMany("Webhook"),
)

var Task = Declare("Task",
	[]*Field{
		String("name"),
		String("status"),
		Float("completion_percentage"),
		DateTime("updated_at"),
		DateTime("created_at"),
	},
	RelToOne("User", "createdBy"),
	RelToOne("Organization"),
)

var Webhook = Declare("Webhook",
	[]*Field{
		String("url"),
		Enum("topics"),
		Enum("status"),
		DateTime("updated_at"),
		DateTime("created_at"),
	},
	RelToOne("Project"),
	RelToOne("User", "createdBy"),
)

var AssetMetadata = Declare("AssetMetadata",
	[]*Field{
		Enum("meta_type"),
		String("meta_value"),
	},
	RelToOne("DataRow"),
)

var ModelRun = Declare("ModelRun",
	[]*Field{
		String("name"),
		DateTime("updated_at"),
		DateTime("created_at"),
		String("created_by_id", "createdBy"),
		String("model_id"),
	},
	RelToMany("AnnotationGroup"),
)

var AnnotationGroup = Declare("AnnotationGroup",
	[]*Field{
		String("label_id"),
		String("model_run_id"),
	},
	RelToOne("DataRow").Cached(),
)
