package guildmigrations

func init() {
	Migrations.MustRegister(CreateGuildConfigsTable, DropGuildConfigsTable)
}
