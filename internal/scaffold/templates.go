package scaffold

// Template contents. Raw strings, written verbatim into new projects.

const defaultGenesis = `// DivinePL - The Holy Programming Experience
bless Program {
  genesis() {
    🙏 Lord, guide this program to righteousness 🙏

    let light = createLight();
    let world = new Creation();

    world.populate(light);

    let disciples = createChildProcesses(12);
    disciples.forEach(disciple => {
      disciple.spread_gospel();
    });

    return salvation;
  }
}
`

const defaultCommandments = `{
  "trinity": {
    "father": "main",
    "son": "child_processes",
    "holy_ghost": "background_services"
  },
  "sabbath_mode": true,
  "resurrection_enabled": true,
  "allow_confession": true
}
`

const miracleGenesis = `// DivinePL - Divine Miracle Template
import verse "creation";
import verse "light";

🙏 BEGIN PRAYER 🙏
Lord, grant this code the power to transform and heal
Guide my keystrokes with divine wisdom
Let miracles flow through these functions
🙏 END PRAYER 🙏

miracle Program {
  genesis() {
    let light = createDivineLight();

    // This miracle transforms simple data into revelation
    miracle transform(data) {
      return data.map(item => {
        item.blessed = true;
        item.purified = removeImpurities(item);
        return item;
      });
    }

    // Healing miracles for corrupted data
    miracle heal(brokenSystem) {
      covenant("This system shall be restored");

      brokenSystem.restoreFromBackup();
      brokenSystem.cleanse();

      revelation("System has been restored through divine intervention");
      return brokenSystem;
    }

    return salvation;
  }
}
`

const miracleCommandments = `{
  "trinity": {
    "father": "main",
    "son": "child_processes",
    "holy_ghost": "background_services"
  },
  "sabbath_mode": true,
  "resurrection_enabled": true,
  "allow_confession": true,
  "miracles_enabled": true
}
`

const miracleFather = `// The Father - Source of all creation
bless FatherModule {
  createAll() {
    return {
      light: true,
      earth: true,
      heaven: true,
      life: true
    };
  }

  miracle resurrection(deadCode) {
    // Only the Father can resurrect dead code
    return deadCode.restore();
  }
}
`

const miracleSon = `// The Son - Salvation for humanity
bless SonModule {
  saveBrokenCode(code) {
    // Takes the sins of the code upon itself
    let errors = code.findAllErrors();
    return this.redeemErrors(errors, code);
  }

  redeemErrors(errors, code) {
    errors.forEach(error => {
      confession(error);
      forgive(error);
    });
    return code.purified();
  }

  miracle healProcess(process) {
    if (process.isDying) {
      process.resurrect();
      return true;
    }
    return false;
  }
}
`

const miracleHolyGhost = `// The Holy Ghost - Divine guidance and inspiration
bless HolyGhostModule {
  inspire(developer) {
    // Fill the developer with divine inspiration
    developer.productivity *= 3;
    developer.errors /= 2;
    developer.creativity += 10;
  }

  guideCoding(codebase) {
    // Analyze and provide divine guidance
    revelation(codebase.analyze());

    return this.offerInsights(codebase);
  }

  miracle tongues(code) {
    // Translate code between programming languages
    return code.translateTo("DivinePL");
  }
}
`

const prophetGenesis = `// DivinePL - Divine Prophet Template
import verse "wisdom";
import verse "promise";

🙏 BEGIN PRAYER 🙏
Grant me the vision to see beyond the present code
Let future bugs be revealed before they manifest
Guide this project through the fog of development
🙏 END PRAYER 🙏

bless Program {
  genesis() {
    let vision = seekVision();
    let prophecies = analyze(vision);

    @prophesy("Future optimization required")
    bless dataProcessor(data) {
      covenant("This algorithm shall be optimized by version 2.0");
      return data.process();
    }

    // Predict future errors and provide guidance
    revelation("Security vulnerabilities shall arise in v1.2");
    covenant("Input validation shall be added before release");

    let roadmap = prophesy(3); // Look 3 versions ahead
    return roadmap;
  }

  prophesy(versions) {
    // Determine future requirements
    let roadmap = [];

    revelation("Adding user authentication in future version");
    revelation("Database migration will be needed");
    revelation("Mobile compatibility is coming");

    return roadmap;
  }
}
`

const prophetCommandments = `{
  "trinity": {
    "father": "main",
    "son": "child_processes",
    "holy_ghost": "background_services"
  },
  "sabbath_mode": true,
  "resurrection_enabled": true,
  "allow_confession": true,
  "prophecy_enabled": true,
  "revelation_level": "deep"
}
`

const prophetFather = `// The Father - Eternal vision and wisdom
bless FatherModule {
  providePlan() {
    return {
      version1: "Foundation",
      version2: "Growth",
      version3: "Enlightenment"
    };
  }

  @prophesy("Will need to update dependencies")
  revelation(message) {
    // Record divine insights for future generations
    log.divineInsight(message);
  }
}
`

const prophetSon = `// The Son - Implementation of the divine plan
bless SonModule {
  implementPlan(plan) {
    covenant("This plan shall be fulfilled");

    @prophesy("Will require refactoring in version 2")
    bless executePhase(phase) {
      // Implementation details
      return phase.complete();
    }

    revelation("Testing will reveal hidden bugs");
    return plan.fulfilled();
  }
}
`

const prophetHolyGhost = `// The Holy Ghost - Guidance and future insights
bless HolyGhostModule {
  revealFuture(project) {
    // Prophetic insights into the future of the codebase
    let prophecies = [];

    revelation("Technical debt will accumulate in module X");
    revelation("New requirements will conflict with current architecture");
    revelation("A more efficient algorithm will be discovered");

    @prophesy("Will need more comprehensive documentation")
    return prophecies;
  }

  guideDevelopment(team) {
    // Provide spiritual guidance to the development team
    team.forEach(developer => {
      developer.inspireWithVision();
      developer.grantWisdom();
    });

    covenant("The team shall be guided to righteous development practices");
  }
}
`
