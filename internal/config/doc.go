// Package config provides configuration parsing for htmldoom projects.
//
// The configuration is stored in htmldoom.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "cache": {
//	    "maxEntries": 12800,
//	    "disabled": false
//	  },
//	  "values": {
//	    "dir": "values",
//	    "static": false
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "reload": true,
//	    "pollInterval": "500ms",
//	    "metrics": true,
//	    "tracing": true
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "www/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Serving on", cfg.ServeAddress())
package config
