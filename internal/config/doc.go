// Package config loads domattr.json.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 3070
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "domattr"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "domattr"
//	  },
//	  "render": {
//	    "pretty": false
//	  },
//	  "logLevel": "info"
//	}
//
// A missing file is not an error: Load returns the defaults.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Listening on", cfg.Server.Address())
package config
