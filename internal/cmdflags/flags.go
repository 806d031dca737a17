// Package cmdflags holds the command line flags shared by the deploy and
// unregister binaries.
package cmdflags

import (
	"discord-slash-bot/internal/adapters/discord/deploy"

	"github.com/urfave/cli/v2"
)

var (
	// GlobalFlag targets the application wide command set.
	GlobalFlag = &cli.BoolFlag{
		Name:  "global",
		Usage: "apply to global commands",
	}
	// TestFlag targets the commands of the GUILD_ID test guild.
	TestFlag = &cli.BoolFlag{
		Name:  "test",
		Usage: "apply to the test guild given by GUILD_ID",
	}
)

// ModeFlags lists both target flags.
var ModeFlags = []cli.Flag{GlobalFlag, TestFlag}

// Mode reads the target flags from the context.
func Mode(cliCtx *cli.Context) (deploy.Mode, error) {
	return deploy.ParseMode(cliCtx.Bool(GlobalFlag.Name), cliCtx.Bool(TestFlag.Name))
}
