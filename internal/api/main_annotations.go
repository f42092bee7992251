// @title           devguide API
// @version         1.0
// @description     Project blueprints, development phases and rendered AI prompts for the devguide wizard.
// @BasePath        /api/v1
package api
